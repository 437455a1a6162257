package model

// FieldKind declares how a form control stores and displays its value. The
// kind is part of the form declaration; nothing inspects values at runtime to
// guess it.
type FieldKind string

const (
	FieldKindText           FieldKind = "text"
	FieldKindEmail          FieldKind = "email"
	FieldKindTel            FieldKind = "tel"
	FieldKindTextArea       FieldKind = "textarea"
	FieldKindHidden         FieldKind = "hidden"
	FieldKindSelectMultiple FieldKind = "select-multiple"
	FieldKindCheckbox       FieldKind = "checkbox"
)

// MultiValue reports whether controls of this kind natively carry more than
// one value (multi-selects and checkbox groups).
func (k FieldKind) MultiValue() bool {
	switch k {
	case FieldKindSelectMultiple, FieldKindCheckbox:
		return true
	default:
		return false
	}
}

// TextLike reports whether the kind renders as a single editable string.
func (k FieldKind) TextLike() bool {
	switch k {
	case FieldKindText, FieldKindEmail, FieldKindTel, FieldKindTextArea, FieldKindHidden:
		return true
	default:
		return false
	}
}

// Valid reports whether k is one of the declared kinds.
func (k FieldKind) Valid() bool {
	return k.TextLike() || k.MultiValue()
}

// Option is a selectable choice for multi-value controls.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// FieldSpec is the declaration a caller hands to the builder: which control
// goes where and what kind it is.
type FieldSpec struct {
	Name    string    `json:"name"`
	Kind    FieldKind `json:"kind"`
	Options []Option  `json:"options,omitempty"`
}

// Field models one control inside the form. Struct fields are annotated so
// renderers can serialise them directly into template contexts.
type Field struct {
	Name        string            `json:"name"`
	Kind        FieldKind         `json:"kind"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Options     []Option          `json:"options,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Hidden reports whether the field is rendered without visible chrome.
func (f Field) Hidden() bool {
	return f.Kind == FieldKindHidden
}

// FormModel is the top-level form description renderers and the form
// synchronizer consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the field with the given name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy of the form model.
func (m FormModel) Clone() FormModel {
	out := m
	out.Metadata = cloneStringMap(m.Metadata)
	if m.Fields != nil {
		out.Fields = make([]Field, len(m.Fields))
		for i, field := range m.Fields {
			field.Options = append([]Option(nil), field.Options...)
			field.Metadata = cloneStringMap(field.Metadata)
			out.Fields[i] = field
		}
	}
	return out
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
