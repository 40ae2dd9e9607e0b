package in

import (
	"context"
	"fmt"
	"strings"

	"studyplan/internal/modules/calendar/dto"
	calendarin "studyplan/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calendarin.Usecase
}

func NewCLIHandler(usecase calendarin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) CurrentMonth(ctx context.Context) (dto.MonthOutput, error) {
	return h.usecase.CurrentMonth(ctx)
}

// RenderText draws the month as a plain-text grid for the calendar
// subcommand. Days carrying exams are tagged with an asterisk; today is
// wrapped in brackets.
func RenderText(m dto.MonthOutput, weekdayHeader []string) string {
	var sb strings.Builder
	sb.WriteString("// " + m.Label + "\n")
	sb.WriteString(strings.Join(weekdayHeader, " ") + "\n")

	col := m.Leading
	sb.WriteString(strings.Repeat("    ", m.Leading))
	for _, day := range m.Days {
		cell := fmt.Sprintf("%2d", day.Num)
		switch {
		case day.Today:
			cell = fmt.Sprintf("[%s]", strings.TrimSpace(cell))
			for len(cell) < 3 {
				cell = " " + cell
			}
		case len(day.Markers) > 0:
			cell += "*"
		default:
			cell += " "
		}
		sb.WriteString(cell + " ")
		col++
		if col%7 == 0 {
			sb.WriteString("\n")
		}
	}
	if col%7 != 0 {
		sb.WriteString("\n")
	}

	for _, day := range m.Days {
		for _, mk := range day.Markers {
			sb.WriteString(fmt.Sprintf("%s  %s %s (id %d)\n", day.Key, mk.Code, mk.Time, mk.ID))
		}
	}
	return sb.String()
}
