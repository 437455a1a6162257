package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-contacts/pkg/contact"
	pkgmodel "github.com/goliatone/go-contacts/pkg/model"
	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
)

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// ContactFormModel returns the contact form as the builder produces it from
// the bundled schema, without going through the parser.
func ContactFormModel() pkgmodel.FormModel {
	return pkgmodel.FormModel{
		OperationID: "submitContact",
		Endpoint:    "/contacts",
		Method:      "POST",
		Summary:     "Submit the contact form",
		Fields: []pkgmodel.Field{
			{Name: contact.FieldID, Kind: pkgmodel.FieldKindHidden, Label: "Id"},
			{Name: contact.FieldName, Kind: pkgmodel.FieldKindText, Label: "Name", Placeholder: "Jon Smith"},
			{Name: contact.FieldAddress, Kind: pkgmodel.FieldKindText, Label: "Address", Placeholder: "76 John Street London"},
			{Name: contact.FieldTelephone, Kind: pkgmodel.FieldKindTel, Label: "Telephone", Placeholder: "01234666333"},
			{Name: contact.FieldEmail, Kind: pkgmodel.FieldKindEmail, Format: "email", Label: "Email", Placeholder: "jon@example.com"},
			{Name: contact.FieldContacts, Kind: pkgmodel.FieldKindText, Label: "Contacts", Description: "Comma separated names"},
		},
	}
}

// SeedFields mirrors the bundled seed document.
func SeedFields() []contact.Fields {
	return []contact.Fields{
		{Name: "Acer.com", Address: "76 John Street London", Telephone: "01234666333", Email: "acer@acer.com", Contacts: []string{"Jon Smith"}},
		{Name: "Sprint.com", Address: "777 Manchester Road Leeds", Telephone: "04443666777", Email: "alice@sprint.com", Contacts: []string{"Virginie Charter"}},
		{Name: "Marker.com", Address: "45 South Wales Road Bristol", Telephone: "06543888777", Email: "mary@marker.com", Contacts: []string{"Marius Lucius"}},
	}
}

// SequentialIDs returns a generator yielding "id-1", "id-2", ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
