package out

import (
	"context"

	"studyplan/internal/modules/theme/domain"
)

// PreferenceStore persists the preset name and, for the custom theme,
// the color pair.
type PreferenceStore interface {
	LoadPreference(ctx context.Context) (string, error)
	SavePreference(ctx context.Context, name string) error
	LoadColors(ctx context.Context) (domain.Colors, bool, error)
	SaveColors(ctx context.Context, colors domain.Colors) error
	ClearColors(ctx context.Context) error
}
