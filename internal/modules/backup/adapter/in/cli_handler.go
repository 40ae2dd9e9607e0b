package in

import (
	"context"

	"studyplan/internal/modules/backup/dto"
	backupin "studyplan/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, path string) (dto.Summary, error) {
	return h.usecase.Export(ctx, path)
}

func (h CLIHandler) Import(ctx context.Context, path string) (dto.Summary, error) {
	return h.usecase.Import(ctx, path)
}
