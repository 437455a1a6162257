package parser

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
)

const formDocument = `
openapi: 3.0.3
info:
  title: Form
  version: 1.0.0
paths:
  /contacts:
    post:
      operationId: submitContact
      summary: Submit the contact form
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                ignored: { type: string }
          application/x-www-form-urlencoded:
            schema:
              $ref: '#/components/schemas/ContactForm'
      responses:
        '303':
          description: Redirect to the page
  /contacts/{id}/edit:
    get:
      operationId: editContact
      parameters:
        - name: id
          in: path
          required: true
          schema: { type: string }
      responses:
        '200':
          description: The page with the form populated
components:
  schemas:
    ContactForm:
      type: object
      required: [name]
      properties:
        name:
          type: string
          title: Full name
          example: Jon Smith
        email:
          type: string
          format: email
        contacts:
          type: string
          example: [Ann, Bob]
`

func mustDocument(t *testing.T, raw string) pkgopenapi.Document {
	t.Helper()
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile("inline.yaml"), []byte(raw))
	if err != nil {
		t.Fatalf("construct document: %v", err)
	}
	return doc
}

func TestOperationsPrefersFormEncodedBodies(t *testing.T) {
	t.Parallel()

	parser := New(pkgopenapi.NewParserOptions())
	operations, err := parser.Operations(context.Background(), mustDocument(t, formDocument))
	if err != nil {
		t.Fatalf("parse operations: %v", err)
	}

	op, ok := operations["submitContact"]
	if !ok {
		t.Fatalf("operation submitContact not found")
	}
	if op.Method != "POST" || op.Path != "/contacts" {
		t.Fatalf("unexpected operation route %s %s", op.Method, op.Path)
	}
	if op.Summary != "Submit the contact form" {
		t.Fatalf("summary = %q", op.Summary)
	}

	req := op.RequestBody
	if req.Ref != "#/components/schemas/ContactForm" {
		t.Fatalf("request ref = %q", req.Ref)
	}
	if diff := cmp.Diff([]string{"contacts", "email", "name"}, req.PropertyNames()); diff != "" {
		t.Fatalf("property names mismatch (-want +got):\n%s", diff)
	}
	if !req.IsRequired("name") || req.IsRequired("email") {
		t.Fatalf("unexpected required set %v", req.Required)
	}

	name, _ := req.Property("name")
	if name.Title != "Full name" || name.Example != "Jon Smith" {
		t.Fatalf("name property = %+v", name)
	}
	email, _ := req.Property("email")
	if email.Format != "email" {
		t.Fatalf("email format = %q", email.Format)
	}
	contacts, _ := req.Property("contacts")
	if contacts.Example != "Ann, Bob" {
		t.Fatalf("list example = %q, want joined values", contacts.Example)
	}

	if _, ok := operations["editContact"]; !ok {
		t.Fatalf("operation editContact not found")
	}
}

func TestOperationsRejectsUndeclaredPathParameters(t *testing.T) {
	t.Parallel()

	broken := strings.Replace(formDocument, `      parameters:
        - name: id
          in: path
          required: true
          schema: { type: string }
`, "", 1)

	parser := New(pkgopenapi.NewParserOptions())
	if _, err := parser.Operations(context.Background(), mustDocument(t, broken)); err == nil {
		t.Fatalf("expected validation error for undeclared path parameter")
	}

	lenient := New(pkgopenapi.NewParserOptions(pkgopenapi.WithValidation(false)))
	if _, err := lenient.Operations(context.Background(), mustDocument(t, broken)); err != nil {
		t.Fatalf("expected lenient parser to accept document, got %v", err)
	}
}

func TestOperationsRejectsDocumentsWithoutPaths(t *testing.T) {
	t.Parallel()

	const empty = `{"openapi": "3.0.0", "info": {"title": "Empty", "version": "1.0.0"}, "paths": {}}`
	parser := New(pkgopenapi.NewParserOptions())
	if _, err := parser.Operations(context.Background(), mustDocument(t, empty)); err == nil {
		t.Fatalf("expected error for document without paths")
	}
}

func TestOperationsHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parser := New(pkgopenapi.NewParserOptions())
	if _, err := parser.Operations(ctx, mustDocument(t, formDocument)); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestJSONReencodesDocument(t *testing.T) {
	t.Parallel()

	parser := New(pkgopenapi.NewParserOptions())
	payload, err := parser.JSON(context.Background(), mustDocument(t, formDocument))
	if err != nil {
		t.Fatalf("encode document: %v", err)
	}

	var decoded struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded.OpenAPI != "3.0.3" {
		t.Fatalf("openapi version = %q", decoded.OpenAPI)
	}
	if _, ok := decoded.Paths["/contacts"]["post"]; !ok {
		t.Fatalf("expected POST /contacts in encoded document, got %v", decoded.Paths)
	}
}

func TestConvertSchemaHandlesRecursiveReferences(t *testing.T) {
	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Cycle", "version": "1.0.0" },
  "paths": {},
  "components": {
    "schemas": {
      "Person": {
        "type": "object",
        "properties": {
          "friend": { "$ref": "#/components/schemas/Friend" }
        }
      },
      "Friend": {
        "type": "object",
        "properties": {
          "person": { "$ref": "#/components/schemas/Person" }
        }
      }
    }
  }
}`

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData([]byte(document))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	converted := convertSchema(doc.Components.Schemas["Person"], map[*openapi3.Schema]bool{})
	friend, ok := converted.Properties["friend"]
	if !ok {
		t.Fatalf("expected friend property on Person schema")
	}
	person, ok := friend.Properties["person"]
	if !ok {
		t.Fatalf("expected person property on Friend schema")
	}
	if person.Ref == "" || len(person.Properties) != 0 {
		t.Fatalf("expected cycle to terminate at a bare ref, got %+v", person)
	}
}
