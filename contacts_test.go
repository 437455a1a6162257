package contacts

import (
	"context"
	"encoding/json"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/testsupport"
)

func TestContactFormFromBundledDescription(t *testing.T) {
	form, err := ContactForm(context.Background(), nil)
	if err != nil {
		t.Fatalf("contact form: %v", err)
	}
	if form.OperationID != SubmitOperationID || form.Endpoint != "/contacts" {
		t.Fatalf("unexpected form %s %s", form.OperationID, form.Endpoint)
	}
	if len(form.Fields) != len(contact.Layout) {
		t.Fatalf("expected %d fields, got %d", len(contact.Layout), len(form.Fields))
	}
	for i, spec := range contact.Layout {
		if form.Fields[i].Name != spec.Name || form.Fields[i].Kind != spec.Kind {
			t.Fatalf("field %d = %+v, want %+v", i, form.Fields[i], spec)
		}
	}
}

func TestOpenAPIJSONDescribesEveryBoundField(t *testing.T) {
	payload, err := OpenAPIJSON(context.Background(), nil)
	if err != nil {
		t.Fatalf("openapi json: %v", err)
	}
	var doc struct {
		Components struct {
			Schemas map[string]struct {
				Properties map[string]any `json:"properties"`
			} `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	properties := doc.Components.Schemas["ContactForm"].Properties
	for _, spec := range contact.Layout {
		if _, ok := properties[spec.Name]; !ok {
			t.Fatalf("ContactForm schema lacks %q", spec.Name)
		}
	}
}

func TestDefaultSeedMatchesFixture(t *testing.T) {
	c, err := NewCollection(nil, contact.WithIDGenerator(testsupport.SequentialIDs()))
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	got := make([]contact.Fields, 0, c.Len())
	for _, record := range c.All() {
		got = append(got, record.Fields())
	}
	if diff := cmp.Diff(testsupport.SeedFields(), got); diff != "" {
		t.Fatalf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	if _, err := fs.ReadFile(SpecFS(), SpecName); err != nil {
		t.Fatalf("spec not embedded: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedTemplates(), "page.tmpl"); err != nil {
		t.Fatalf("page template not embedded: %v", err)
	}
	js, err := fs.ReadFile(RuntimeAssetsFS(), "contacts.js")
	if err != nil {
		t.Fatalf("runtime script not embedded: %v", err)
	}
	if !strings.Contains(string(js), "contacts-list") {
		t.Fatalf("runtime script does not target the list mount")
	}
}

func TestDefaultSeedIsACopy(t *testing.T) {
	seed := DefaultSeed()
	seed[0] = '#'
	if DefaultSeed()[0] == '#' {
		t.Fatalf("DefaultSeed exposed the embedded bytes")
	}
}
