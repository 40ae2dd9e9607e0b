package usecase

import (
	"context"
	"fmt"

	"studyplan/internal/modules/exam/domain"
	"studyplan/internal/modules/exam/dto"
	examin "studyplan/internal/modules/exam/port/in"
	"studyplan/internal/modules/exam/service"
	apperrors "studyplan/internal/platform/errors"
)

type Interactor struct {
	repo *service.Repository
}

func NewInteractor(repo *service.Repository) examin.Usecase {
	return &Interactor{repo: repo}
}

func (i *Interactor) Create(ctx context.Context, input dto.ExamInput) (dto.ExamOutput, error) {
	if err := domain.ValidateDraft(input.Code, input.Date); err != nil {
		return dto.ExamOutput{}, err
	}
	exam, err := i.repo.Create(ctx, input.Code, input.Date, input.Time, input.Notes)
	if err != nil {
		return dto.ExamOutput{}, err
	}
	return toOutput(exam), nil
}

func (i *Interactor) Update(ctx context.Context, id int64, input dto.ExamInput) (dto.ExamOutput, error) {
	if err := domain.ValidateDraft(input.Code, input.Date); err != nil {
		return dto.ExamOutput{}, err
	}
	exam, err := i.repo.Update(ctx, id, input.Code, input.Date, input.Time, input.Notes)
	if err != nil {
		return dto.ExamOutput{}, err
	}
	return toOutput(exam), nil
}

func (i *Interactor) Delete(ctx context.Context, id int64) error {
	return i.repo.Delete(ctx, id)
}

func (i *Interactor) Get(ctx context.Context, id int64) (dto.ExamOutput, error) {
	exam, ok, err := i.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ExamOutput{}, err
	}
	if !ok {
		return dto.ExamOutput{}, fmt.Errorf("exam %d: %w", id, apperrors.ErrNotFound)
	}
	return toOutput(exam), nil
}

func (i *Interactor) OnDate(ctx context.Context, date string) ([]dto.ExamOutput, error) {
	exams, err := i.repo.FilterByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return toOutputs(exams), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.ExamOutput, error) {
	exams, err := i.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(exams), nil
}

func toOutput(e domain.Exam) dto.ExamOutput {
	return dto.ExamOutput{ID: e.ID, Code: e.Code, Date: e.Date, Time: e.Time, Notes: e.Notes}
}

func toOutputs(exams []domain.Exam) []dto.ExamOutput {
	out := make([]dto.ExamOutput, len(exams))
	for i, e := range exams {
		out[i] = toOutput(e)
	}
	return out
}
