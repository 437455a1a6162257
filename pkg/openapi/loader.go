package openapi

import (
	"context"
	"io/fs"
)

// Loader resolves a Source into a Document.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures loader implementations.
type LoaderOptions struct {
	// FileSystem backs embedded sources. The root package wires the module's
	// bundled documents here.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions during construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem configures the fs.FS used for embedded sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = fsys
	}
}

// NewLoaderOptions applies LoaderOption functions and returns the resulting
// configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var cfg LoaderOptions
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
