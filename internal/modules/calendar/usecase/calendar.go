package usecase

import (
	"context"

	"studyplan/internal/modules/calendar/domain"
	"studyplan/internal/modules/calendar/dto"
	calendarin "studyplan/internal/modules/calendar/port/in"
	examdomain "studyplan/internal/modules/exam/domain"
	examin "studyplan/internal/modules/exam/port/in"
	"studyplan/internal/platform/clock"
)

type Interactor struct {
	exams     examin.Usecase
	clk       clock.Clock
	weekStart domain.WeekStart
}

func NewInteractor(exams examin.Usecase, clk clock.Clock, weekStart domain.WeekStart) calendarin.Usecase {
	return &Interactor{exams: exams, clk: clk, weekStart: weekStart}
}

func (i *Interactor) CurrentMonth(ctx context.Context) (dto.MonthOutput, error) {
	outputs, err := i.exams.List(ctx)
	if err != nil {
		return dto.MonthOutput{}, err
	}
	exams := make([]examdomain.Exam, len(outputs))
	for n, e := range outputs {
		exams[n] = examdomain.Exam{ID: e.ID, Code: e.Code, Date: e.Date, Time: e.Time, Notes: e.Notes}
	}
	month := domain.Project(i.clk.Now(), exams, i.weekStart)
	return toOutput(month), nil
}

func toOutput(m domain.Month) dto.MonthOutput {
	out := dto.MonthOutput{
		Year:    m.Year,
		Month:   int(m.Month),
		Label:   m.Label,
		Leading: m.Leading,
		Days:    make([]dto.Day, len(m.Days)),
	}
	for i, d := range m.Days {
		day := dto.Day{Num: d.Num, Key: d.Key, Today: d.Today}
		for _, mk := range d.Markers {
			day.Markers = append(day.Markers, dto.Marker{ID: mk.ID, Code: mk.Code, Time: mk.Time})
		}
		out.Days[i] = day
	}
	return out
}
