package dto

type ThemeOutput struct {
	Name       string
	Background string
	Text       string
	Border     string
}
