package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
)

const minimal = "openapi: 3.0.3\ninfo: {title: t, version: \"1\"}\npaths: {}\n"

func TestLoadBundledDocument(t *testing.T) {
	fsys := fstest.MapFS{"contacts.yaml": {Data: []byte(minimal)}}
	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(fsys)))

	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromEmbedded("contacts.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != minimal {
		t.Fatalf("raw mismatch: %q", doc.Raw())
	}
	if doc.Location() != "contacts.yaml" {
		t.Fatalf("location = %q", doc.Location())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.yaml")
	if err := os.WriteFile(path, []byte(minimal), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l := New(pkgopenapi.NewLoaderOptions())

	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromFile(path)); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	withFS := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(fstest.MapFS{})))
	withoutFS := New(pkgopenapi.NewLoaderOptions())
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name   string
		loader pkgopenapi.Loader
		ctx    context.Context
		src    pkgopenapi.Source
		want   string
	}{
		{"nil source", withFS, context.Background(), nil, "source is nil"},
		{"missing bundled", withFS, context.Background(), pkgopenapi.SourceFromEmbedded("nope.yaml"), "read bundled nope.yaml"},
		{"no filesystem", withoutFS, context.Background(), pkgopenapi.SourceFromEmbedded("contacts.yaml"), "no bundled documents"},
		{"missing file", withoutFS, context.Background(), pkgopenapi.SourceFromFile(filepath.Join(t.TempDir(), "nope.yaml")), "read "},
		{"cancelled", withFS, cancelled, pkgopenapi.SourceFromEmbedded("contacts.yaml"), "context canceled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.loader.Load(tt.ctx, tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}
