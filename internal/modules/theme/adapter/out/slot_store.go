package out

import (
	"context"

	"studyplan/internal/modules/theme/domain"
	themeout "studyplan/internal/modules/theme/port/out"
	"studyplan/internal/platform/storage"
)

// SlotPreferenceStore persists the preset name and custom colors into
// their own slots.
type SlotPreferenceStore struct {
	store storage.Store
}

func NewSlotPreferenceStore(store storage.Store) themeout.PreferenceStore {
	return &SlotPreferenceStore{store: store}
}

func (s *SlotPreferenceStore) LoadPreference(ctx context.Context) (string, error) {
	name := domain.DefaultPreset
	if err := s.store.Load(ctx, storage.SlotTheme, &name); err != nil {
		return "", err
	}
	return name, nil
}

func (s *SlotPreferenceStore) SavePreference(ctx context.Context, name string) error {
	return s.store.Save(ctx, storage.SlotTheme, name)
}

func (s *SlotPreferenceStore) LoadColors(ctx context.Context) (domain.Colors, bool, error) {
	colors := domain.Colors{}
	if err := s.store.Load(ctx, storage.SlotThemeColors, &colors); err != nil {
		return domain.Colors{}, false, err
	}
	if colors.Background == "" || colors.Text == "" {
		return domain.Colors{}, false, nil
	}
	return colors, true, nil
}

func (s *SlotPreferenceStore) SaveColors(ctx context.Context, colors domain.Colors) error {
	return s.store.Save(ctx, storage.SlotThemeColors, colors)
}

func (s *SlotPreferenceStore) ClearColors(ctx context.Context) error {
	return s.store.Delete(ctx, storage.SlotThemeColors)
}
