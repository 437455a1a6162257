package render

import (
	"errors"
	"strings"
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrMissingTranslator is passed to handlers when no translator is set.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Keys for the fixed UI strings.
const (
	KeyEmptyList  = "contacts.list.empty"
	KeyEdit       = "contacts.action.edit"
	KeyDelete     = "contacts.action.delete"
	KeyModeAdd    = "contacts.mode.add"
	KeyModeUpdate = "contacts.mode.update"
	KeyCancel     = "contacts.action.cancel"
	KeyTitle      = "contacts.page.title"
)

var defaultStrings = map[string]string{
	KeyEmptyList:  "No items to display",
	KeyEdit:       "Edit",
	KeyDelete:     "Delete",
	KeyModeAdd:    "Add",
	KeyModeUpdate: "Update",
	KeyCancel:     "Cancel",
	KeyTitle:      "Contacts",
}

// DefaultText returns the built-in English string for key, or key itself.
func DefaultText(key string) string {
	if text, ok := defaultStrings[key]; ok {
		return text
	}
	return key
}

// Text resolves key through the options' translator, falling back to the
// built-in string.
func (o RenderOptions) Text(key string) string {
	return translate(o.Locale, key, DefaultText(key), o.Translator, nil)
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
