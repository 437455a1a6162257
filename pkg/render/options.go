package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the views.
type RenderOptions struct {
	// Messages are form-level notices (typically mapped errors) shown above
	// the form.
	Messages []string
	// Locale and Translator resolve the fixed UI strings. A nil Translator
	// keeps the built-in English text.
	Locale     string
	Translator Translator
	// Theme overrides the renderer's default theme selection.
	Theme *theme.Selection
}
