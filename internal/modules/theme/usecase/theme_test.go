package usecase_test

import (
	"context"
	"errors"
	"testing"

	themeout "studyplan/internal/modules/theme/adapter/out"
	themein "studyplan/internal/modules/theme/port/in"
	"studyplan/internal/modules/theme/usecase"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/storage"
)

func newThemeStack(store storage.Store) themein.Usecase {
	return usecase.NewInteractor(themeout.NewSlotPreferenceStore(store))
}

func TestCurrentDefaultsToNord(t *testing.T) {
	t.Parallel()
	uc := newThemeStack(storage.NewMemorySlotStore())

	out, err := uc.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if out.Name != "nord" || out.Background != "#2E3440" || out.Text != "#ECEFF4" || out.Border != "#4C566A" {
		t.Fatalf("unexpected default theme %+v", out)
	}
}

func TestSetPresetPersistsAcrossReload(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	ctx := context.Background()

	if _, err := newThemeStack(store).SetPreset(ctx, "matrix"); err != nil {
		t.Fatalf("set preset: %v", err)
	}

	out, err := newThemeStack(store).Current(ctx)
	if err != nil {
		t.Fatalf("current after reload: %v", err)
	}
	if out.Name != "matrix" || out.Background != "#000000" || out.Text != "#00ff41" {
		t.Fatalf("unexpected theme after reload %+v", out)
	}
}

func TestSetPresetRejectsUnknownName(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newThemeStack(store)

	if _, err := uc.SetPreset(context.Background(), "solarized"); !errors.Is(err, apperrors.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if store.Saves[storage.SlotTheme] != 0 {
		t.Fatalf("rejected preset must not persist")
	}
}

func TestSetCustomValidatesAndDerivesBorder(t *testing.T) {
	t.Parallel()
	uc := newThemeStack(storage.NewMemorySlotStore())
	ctx := context.Background()

	for _, pair := range [][2]string{
		{"111111", "#222222"},
		{"#11111", "#222222"},
		{"#111111", "red"},
		{"", ""},
	} {
		if _, err := uc.SetCustom(ctx, pair[0], pair[1]); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("colors %v: expected ErrInvalidInput, got %v", pair, err)
		}
	}

	out, err := uc.SetCustom(ctx, "#101820", "#F2AA4C")
	if err != nil {
		t.Fatalf("set custom: %v", err)
	}
	if out.Name != "custom" || out.Background != "#101820" || out.Text != "#F2AA4C" || out.Border != "#F2AA4C" {
		t.Fatalf("unexpected custom theme %+v", out)
	}

	current, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current != out {
		t.Fatalf("current must resolve the stored custom colors, got %+v", current)
	}
}

func TestResetClearsCustomColors(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	uc := newThemeStack(store)
	ctx := context.Background()

	if _, err := uc.SetCustom(ctx, "#101820", "#F2AA4C"); err != nil {
		t.Fatalf("set custom: %v", err)
	}
	out, err := uc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if out.Name != "nord" {
		t.Fatalf("reset must land on the default preset, got %+v", out)
	}

	current, err := newThemeStack(store).Current(ctx)
	if err != nil {
		t.Fatalf("current after reset: %v", err)
	}
	if current.Name != "nord" {
		t.Fatalf("custom colors survived reset: %+v", current)
	}
}

func TestCustomPreferenceWithoutColorsFallsBack(t *testing.T) {
	t.Parallel()
	store := storage.NewMemorySlotStore()
	if err := store.Save(context.Background(), storage.SlotTheme, "custom"); err != nil {
		t.Fatalf("seed preference: %v", err)
	}

	out, err := newThemeStack(store).Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if out.Name != "nord" {
		t.Fatalf("dangling custom preference must fall back to the default, got %+v", out)
	}
}
