package in

import (
	"context"

	"studyplan/internal/modules/task/dto"
	taskin "studyplan/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Append(ctx context.Context, text string) (dto.AppendOutput, error) {
	return h.usecase.Append(ctx, text)
}

func (h CLIHandler) DeleteAt(ctx context.Context, index int) error {
	return h.usecase.DeleteAt(ctx, index)
}

func (h CLIHandler) List(ctx context.Context) ([]string, error) {
	return h.usecase.List(ctx)
}
