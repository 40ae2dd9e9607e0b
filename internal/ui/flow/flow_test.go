package flow

import "testing"

func TestTransitionTable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		from  State
		event Event
		want  State
	}{
		{"add from idle opens create form", State{Mode: Idle}, Event{Kind: AddClicked}, State{Mode: EditingCreate}},
		{"add from viewing opens create form", State{Mode: Viewing, SelectedID: 7}, Event{Kind: AddClicked}, State{Mode: EditingCreate}},
		{"add while editing is ignored", State{Mode: EditingCreate}, Event{Kind: AddClicked}, State{Mode: EditingCreate}},
		{"marker from idle selects exam", State{Mode: Idle}, Event{Kind: MarkerActivated, ExamID: 42}, State{Mode: Viewing, SelectedID: 42}},
		{"marker while viewing switches selection", State{Mode: Viewing, SelectedID: 1}, Event{Kind: MarkerActivated, ExamID: 2}, State{Mode: Viewing, SelectedID: 2}},
		{"marker while editing is ignored", State{Mode: EditingUpdate, SelectedID: 1}, Event{Kind: MarkerActivated, ExamID: 2}, State{Mode: EditingUpdate, SelectedID: 1}},
		{"edit needs a viewed exam", State{Mode: Idle}, Event{Kind: EditClicked}, State{Mode: Idle}},
		{"edit from viewing keeps selection", State{Mode: Viewing, SelectedID: 9}, Event{Kind: EditClicked}, State{Mode: EditingUpdate, SelectedID: 9}},
		{"close clears selection", State{Mode: Viewing, SelectedID: 9}, Event{Kind: CloseClicked}, State{Mode: Idle}},
		{"delete confirmed clears selection", State{Mode: Viewing, SelectedID: 9}, Event{Kind: DeleteConfirmed}, State{Mode: Idle}},
		{"close from idle is ignored", State{Mode: Idle}, Event{Kind: CloseClicked}, State{Mode: Idle}},
		{"valid submit closes create form", State{Mode: EditingCreate}, Event{Kind: SubmitValid}, State{Mode: Idle}},
		{"valid submit closes update form", State{Mode: EditingUpdate, SelectedID: 3}, Event{Kind: SubmitValid}, State{Mode: Idle}},
		{"invalid submit keeps form open", State{Mode: EditingUpdate, SelectedID: 3}, Event{Kind: SubmitInvalid}, State{Mode: EditingUpdate, SelectedID: 3}},
		{"cancel closes form", State{Mode: EditingCreate}, Event{Kind: CancelClicked}, State{Mode: Idle}},
		{"cancel outside form is ignored", State{Mode: Viewing, SelectedID: 5}, Event{Kind: CancelClicked}, State{Mode: Viewing, SelectedID: 5}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Transition(tc.from, tc.event); got != tc.want {
				t.Fatalf("Transition(%+v, %+v) = %+v, want %+v", tc.from, tc.event, got, tc.want)
			}
		})
	}
}

func TestEditingHelper(t *testing.T) {
	t.Parallel()
	if (State{Mode: Idle}).Editing() || (State{Mode: Viewing}).Editing() {
		t.Fatalf("idle and viewing must not report editing")
	}
	if !(State{Mode: EditingCreate}).Editing() || !(State{Mode: EditingUpdate}).Editing() {
		t.Fatalf("both form modes must report editing")
	}
}
