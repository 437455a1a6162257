package contacts

import (
	"embed"
	"io/fs"

	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
)

//go:embed pkg/openapi/spec/*.yaml
var embeddedSpecs embed.FS

//go:embed seed.yaml
var defaultSeed []byte

// SpecName is the bundled description of the form endpoints.
const SpecName = "contacts.yaml"

// SubmitOperationID names the operation whose request body defines the
// contact form.
const SubmitOperationID = "submitContact"

// SpecFS exposes the bundled OpenAPI documents.
func SpecFS() fs.FS {
	sub, err := fs.Sub(embeddedSpecs, "pkg/openapi/spec")
	if err != nil {
		return embeddedSpecs
	}
	return sub
}

// SpecSource points the loader at the bundled description.
func SpecSource() pkgopenapi.Source {
	return pkgopenapi.SourceFromEmbedded(SpecName)
}

// DefaultSeed returns a copy of the bundled seed document.
func DefaultSeed() []byte {
	return append([]byte(nil), defaultSeed...)
}
