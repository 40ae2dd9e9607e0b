package domain

import (
	"fmt"
	"regexp"

	apperrors "studyplan/internal/platform/errors"
)

// Palette is the resolved color set applied to the UI.
type Palette struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// Colors is the persisted custom color pair. The border follows the text
// color, as the customizer only exposes background and text.
type Colors struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

const (
	DefaultPreset = "nord"
	CustomName    = "custom"
)

var presets = map[string]Palette{
	"nord":   {Name: "nord", Background: "#2E3440", Text: "#ECEFF4", Border: "#4C566A"},
	"peach":  {Name: "peach", Background: "#FFF5E1", Text: "#5D4037", Border: "#D7CCC8"},
	"matrix": {Name: "matrix", Background: "#000000", Text: "#00ff41", Border: "#003300"},
}

// PresetNames lists the named presets in display order.
func PresetNames() []string {
	return []string{"nord", "peach", "matrix"}
}

// Preset resolves a named preset.
func Preset(name string) (Palette, error) {
	p, ok := presets[name]
	if !ok {
		return Palette{}, fmt.Errorf("%s: %w", name, apperrors.ErrUnknownTheme)
	}
	return p, nil
}

// FromColors builds the custom palette from a persisted color pair.
func FromColors(c Colors) Palette {
	return Palette{Name: CustomName, Background: c.Background, Text: c.Text, Border: c.Text}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateColors checks that both custom colors are #rrggbb values.
func ValidateColors(c Colors) error {
	if !hexColor.MatchString(c.Background) {
		return fmt.Errorf("%w: background must be a #rrggbb color", apperrors.ErrInvalidInput)
	}
	if !hexColor.MatchString(c.Text) {
		return fmt.Errorf("%w: text must be a #rrggbb color", apperrors.ErrInvalidInput)
	}
	return nil
}
