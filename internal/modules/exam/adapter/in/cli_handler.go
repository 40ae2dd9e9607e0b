package in

import (
	"context"

	"studyplan/internal/modules/exam/dto"
	examin "studyplan/internal/modules/exam/port/in"
)

type CLIHandler struct {
	usecase examin.Usecase
}

func NewCLIHandler(usecase examin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, code, date, timeStr, notes string) (dto.ExamOutput, error) {
	return h.usecase.Create(ctx, dto.ExamInput{Code: code, Date: date, Time: timeStr, Notes: notes})
}

func (h CLIHandler) Update(ctx context.Context, id int64, code, date, timeStr, notes string) (dto.ExamOutput, error) {
	return h.usecase.Update(ctx, id, dto.ExamInput{Code: code, Date: date, Time: timeStr, Notes: notes})
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Get(ctx context.Context, id int64) (dto.ExamOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) OnDate(ctx context.Context, date string) ([]dto.ExamOutput, error) {
	return h.usecase.OnDate(ctx, date)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ExamOutput, error) {
	return h.usecase.List(ctx)
}
