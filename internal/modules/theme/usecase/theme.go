package usecase

import (
	"context"

	"studyplan/internal/modules/theme/domain"
	"studyplan/internal/modules/theme/dto"
	themein "studyplan/internal/modules/theme/port/in"
	themeout "studyplan/internal/modules/theme/port/out"
)

type Interactor struct {
	store themeout.PreferenceStore
}

func NewInteractor(store themeout.PreferenceStore) themein.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) Current(ctx context.Context) (dto.ThemeOutput, error) {
	name, err := i.store.LoadPreference(ctx)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	if name == domain.CustomName {
		colors, ok, err := i.store.LoadColors(ctx)
		if err != nil {
			return dto.ThemeOutput{}, err
		}
		if ok {
			return toOutput(domain.FromColors(colors)), nil
		}
		// A custom preference without stored colors falls back to default.
		name = domain.DefaultPreset
	}
	palette, err := domain.Preset(name)
	if err != nil {
		palette, _ = domain.Preset(domain.DefaultPreset)
	}
	return toOutput(palette), nil
}

func (i *Interactor) SetPreset(ctx context.Context, name string) (dto.ThemeOutput, error) {
	palette, err := domain.Preset(name)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	if err := i.store.SavePreference(ctx, name); err != nil {
		return dto.ThemeOutput{}, err
	}
	return toOutput(palette), nil
}

func (i *Interactor) SetCustom(ctx context.Context, background, text string) (dto.ThemeOutput, error) {
	colors := domain.Colors{Background: background, Text: text}
	if err := domain.ValidateColors(colors); err != nil {
		return dto.ThemeOutput{}, err
	}
	if err := i.store.SaveColors(ctx, colors); err != nil {
		return dto.ThemeOutput{}, err
	}
	if err := i.store.SavePreference(ctx, domain.CustomName); err != nil {
		return dto.ThemeOutput{}, err
	}
	return toOutput(domain.FromColors(colors)), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.ThemeOutput, error) {
	if err := i.store.ClearColors(ctx); err != nil {
		return dto.ThemeOutput{}, err
	}
	return i.SetPreset(ctx, domain.DefaultPreset)
}

func toOutput(p domain.Palette) dto.ThemeOutput {
	return dto.ThemeOutput{Name: p.Name, Background: p.Background, Text: p.Text, Border: p.Border}
}
