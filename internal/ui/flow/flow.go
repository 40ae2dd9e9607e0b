// Package flow holds the calendar panel's selection and form state as an
// explicit state machine. All transitions go through Transition; an event
// that is not legal in the current state returns the state unchanged, so
// stray key presses can never produce an illegal combination such as
// update-editing without a selected exam.
package flow

type Mode int

const (
	// Idle: no form open, no detail panel open.
	Idle Mode = iota
	// Viewing: the detail panel shows the selected exam.
	Viewing
	// EditingCreate: the form is open in create mode.
	EditingCreate
	// EditingUpdate: the form will overwrite the selected exam on submit.
	EditingUpdate
)

// State pairs the mode with the exam id it refers to. SelectedID is
// meaningful in Viewing and EditingUpdate only.
type State struct {
	Mode       Mode
	SelectedID int64
}

type EventKind int

const (
	AddClicked EventKind = iota
	MarkerActivated
	EditClicked
	CloseClicked
	DeleteConfirmed
	SubmitValid
	SubmitInvalid
	CancelClicked
)

type Event struct {
	Kind   EventKind
	ExamID int64 // payload for MarkerActivated
}

func Transition(s State, e Event) State {
	switch e.Kind {
	case AddClicked:
		if s.Mode == Idle || s.Mode == Viewing {
			return State{Mode: EditingCreate}
		}
	case MarkerActivated:
		if s.Mode == Idle || s.Mode == Viewing {
			return State{Mode: Viewing, SelectedID: e.ExamID}
		}
	case EditClicked:
		// Edit-open without a viewed exam is a no-op.
		if s.Mode == Viewing {
			return State{Mode: EditingUpdate, SelectedID: s.SelectedID}
		}
	case CloseClicked, DeleteConfirmed:
		if s.Mode == Viewing {
			return State{Mode: Idle}
		}
	case SubmitValid, CancelClicked:
		if s.Mode == EditingCreate || s.Mode == EditingUpdate {
			return State{Mode: Idle}
		}
	case SubmitInvalid:
		// Validation failure keeps the form open, error shown by the view.
		return s
	}
	return s
}

// Editing reports whether the form is open in either mode.
func (s State) Editing() bool {
	return s.Mode == EditingCreate || s.Mode == EditingUpdate
}
