package model

import (
	"errors"
	"fmt"
	"strings"

	pkgopenapi "github.com/goliatone/go-contacts/pkg/openapi"
)

// Builder converts OpenAPI operations into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	opts.Labels = cloneStringMap(options.Labels)
	return &Builder{opts: opts}
}

// Build transforms an OpenAPI operation into a FormModel. The layout decides
// which controls exist, their order and their kind; the request body schema
// contributes labels, placeholders, descriptions and required flags. Every
// layout entry must be described by the schema.
func (b *Builder) Build(op pkgopenapi.Operation, layout []FieldSpec) (FormModel, error) {
	if err := validateOperation(op); err != nil {
		return FormModel{}, err
	}
	if len(layout) == 0 {
		return FormModel{}, errors.New("model: field layout is empty")
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Fields:      make([]Field, 0, len(layout)),
	}
	if op.Description != "" {
		form.Metadata = map[string]string{"description": op.Description}
	}

	seen := make(map[string]struct{}, len(layout))
	for _, spec := range layout {
		if spec.Name == "" {
			return FormModel{}, fmt.Errorf("model: operation %s: field name is required", op.ID)
		}
		if _, dup := seen[spec.Name]; dup {
			return FormModel{}, fmt.Errorf("model: operation %s: duplicate field %q", op.ID, spec.Name)
		}
		seen[spec.Name] = struct{}{}
		if !spec.Kind.Valid() {
			return FormModel{}, fmt.Errorf("model: operation %s: field %q has unknown kind %q", op.ID, spec.Name, spec.Kind)
		}

		prop, ok := op.RequestBody.Property(spec.Name)
		if !ok {
			return FormModel{}, fmt.Errorf("model: operation %s: field %q is not described by the request body", op.ID, spec.Name)
		}
		form.Fields = append(form.Fields, b.fieldFromSchema(spec, prop, op.RequestBody.IsRequired(spec.Name)))
	}

	return form, nil
}

func (b *Builder) fieldFromSchema(spec FieldSpec, schema pkgopenapi.Schema, required bool) Field {
	field := Field{
		Name:        spec.Name,
		Kind:        spec.Kind,
		Format:      schema.Format,
		Required:    required,
		Label:       schema.Title,
		Placeholder: schema.Example,
		Description: schema.Description,
	}
	if len(spec.Options) > 0 {
		field.Options = append([]Option(nil), spec.Options...)
	}
	if field.Label == "" {
		field.Label = b.opts.Labeler(spec.Name)
	}
	if override, ok := b.opts.Labels[spec.Name]; ok && override != "" {
		field.Label = override
	}
	if schema.Ref != "" {
		field.Metadata = map[string]string{"$ref": schema.Ref}
	}
	return field
}

func validateOperation(op pkgopenapi.Operation) error {
	if op.ID == "" {
		return errors.New("model: operation id is required")
	}
	if op.Method == "" {
		return fmt.Errorf("model: operation %s: method is required", op.ID)
	}
	if op.Path == "" {
		return fmt.Errorf("model: operation %s: path is required", op.ID)
	}
	if len(op.RequestBody.Properties) == 0 {
		return fmt.Errorf("model: operation %s: request body has no properties", op.ID)
	}
	return nil
}
