package in

import (
	"context"

	"studyplan/internal/modules/theme/dto"
	themein "studyplan/internal/modules/theme/port/in"
)

type CLIHandler struct {
	usecase themein.Usecase
}

func NewCLIHandler(usecase themein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) (dto.ThemeOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) SetPreset(ctx context.Context, name string) (dto.ThemeOutput, error) {
	return h.usecase.SetPreset(ctx, name)
}

func (h CLIHandler) SetCustom(ctx context.Context, background, text string) (dto.ThemeOutput, error) {
	return h.usecase.SetCustom(ctx, background, text)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.ThemeOutput, error) {
	return h.usecase.Reset(ctx)
}
