package in

import (
	"context"

	"studyplan/internal/modules/theme/dto"
)

type Usecase interface {
	// Current resolves the active palette, falling back to the default
	// preset when nothing (or something broken) is persisted.
	Current(ctx context.Context) (dto.ThemeOutput, error)
	SetPreset(ctx context.Context, name string) (dto.ThemeOutput, error)
	SetCustom(ctx context.Context, background, text string) (dto.ThemeOutput, error)
	// Reset clears custom colors and restores the default preset.
	Reset(ctx context.Context) (dto.ThemeOutput, error)
}
