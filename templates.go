package contacts

import (
	"io/fs"

	vanilla "github.com/goliatone/go-contacts/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can copy them as a starting point for a templates directory.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
