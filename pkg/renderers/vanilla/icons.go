package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Icons holds the markup placed inside the edit and delete controls. Markup is
// sanitised to inline SVG before use.
type Icons struct {
	Edit   string
	Delete string
}

// DefaultIcons returns the built-in pencil and trash glyphs.
func DefaultIcons() Icons {
	return Icons{
		Edit:   `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16" width="16" height="16" fill="currentColor" aria-hidden="true"><path d="M12.1 1.3a1 1 0 0 1 1.4 0l1.2 1.2a1 1 0 0 1 0 1.4L5.6 13 2 14l1-3.6z"/></svg>`,
		Delete: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16" width="16" height="16" fill="currentColor" aria-hidden="true"><path d="M5 1h6v1h4v2H1V2h4zM2 5h12l-1 10H3z"/></svg>`,
	}
}

func (i Icons) sanitized() map[string]string {
	return map[string]string{
		"edit":   sanitizeIconMarkup(i.Edit),
		"delete": sanitizeIconMarkup(i.Delete),
	}
}

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

// iconSanitizer allows static SVG shapes only: no scripts, no event handlers,
// no external references.
func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		shapes := []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"}
		policy.AllowElements(append([]string{"svg", "g", "title", "desc"}, shapes...)...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")
		policy.AllowAttrs("fill", "stroke", "class", "transform").OnElements("g")
		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "fill", "stroke", "stroke-width",
			"stroke-linecap", "stroke-linejoin", "class",
		).OnElements(shapes...)

		iconPolicy = policy
	})
	return iconPolicy
}
