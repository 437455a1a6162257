package template

import "io"

// TemplateRenderer is the seam renderers render through. Implementations load
// named templates, render ad-hoc template strings and accept filters and
// global data.
type TemplateRenderer interface {
	// Render executes the named template. When writers are supplied the
	// output is copied to each of them as well as returned.
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
