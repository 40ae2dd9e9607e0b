package usecase

import (
	"context"

	"studyplan/internal/modules/task/dto"
	taskin "studyplan/internal/modules/task/port/in"
	"studyplan/internal/modules/task/service"
)

type Interactor struct {
	repo *service.Repository
}

func NewInteractor(repo *service.Repository) taskin.Usecase {
	return &Interactor{repo: repo}
}

func (i *Interactor) Append(ctx context.Context, text string) (dto.AppendOutput, error) {
	added, ok, err := i.repo.Append(ctx, text)
	if err != nil {
		return dto.AppendOutput{}, err
	}
	tasks, err := i.repo.List(ctx)
	if err != nil {
		return dto.AppendOutput{}, err
	}
	return dto.AppendOutput{Added: ok, Text: added, Count: len(tasks)}, nil
}

func (i *Interactor) DeleteAt(ctx context.Context, index int) error {
	return i.repo.DeleteAt(ctx, index)
}

func (i *Interactor) List(ctx context.Context) ([]string, error) {
	return i.repo.List(ctx)
}
