package contacts

import (
	internalLoader "github.com/goliatone/go-contacts/internal/openapi/loader"
	internalParser "github.com/goliatone/go-contacts/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers. Embedded sources resolve against
// SpecFS unless WithFileSystem says otherwise.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(append([]pkgopenapi.LoaderOption{pkgopenapi.WithFileSystem(SpecFS())}, options...)...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}
