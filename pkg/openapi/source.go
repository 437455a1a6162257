package openapi

import "path/filepath"

// fileSource identifies on-disk OpenAPI documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// embeddedSource references a document compiled into the binary.
type embeddedSource struct {
	name string
}

func (s embeddedSource) Location() string {
	return s.name
}

func (s embeddedSource) Kind() SourceKind {
	return SourceKindEmbedded
}

// SourceFromEmbedded returns a Source naming a document bundled with the
// module.
func SourceFromEmbedded(name string) Source {
	return embeddedSource{name: name}
}
