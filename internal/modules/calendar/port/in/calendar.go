package in

import (
	"context"

	"studyplan/internal/modules/calendar/dto"
)

type Usecase interface {
	// CurrentMonth projects the real current month; there is no
	// month-navigation state.
	CurrentMonth(ctx context.Context) (dto.MonthOutput, error)
}
