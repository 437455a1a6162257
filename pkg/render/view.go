package render

import (
	"strings"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/formsync"
	"github.com/goliatone/go-contacts/pkg/model"
)

// ListEntry is one displayed record. Display is the "name, email" text shown
// for the entry; ID keys the edit and delete controls.
type ListEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Display string `json:"display"`
}

// ListView is the renderer input for the record list.
type ListView struct {
	Entries []ListEntry `json:"entries"`
	Empty   bool        `json:"empty"`
}

// NewListView projects records in order.
func NewListView(records []contact.Record) ListView {
	view := ListView{
		Entries: make([]ListEntry, 0, len(records)),
		Empty:   len(records) == 0,
	}
	for _, record := range records {
		view.Entries = append(view.Entries, ListEntry{
			ID:      record.ID,
			Name:    record.Name,
			Email:   record.Email,
			Display: displayText(record.Name, record.Email),
		})
	}
	return view
}

func displayText(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}

// FormControl joins a control's live state with its declared presentation.
type FormControl struct {
	Name        string            `json:"name"`
	Kind        model.FieldKind   `json:"kind"`
	Hidden      bool              `json:"hidden"`
	Multi       bool              `json:"multi"`
	Required    bool              `json:"required"`
	Label       string            `json:"label"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       string            `json:"value"`
	Choices     []formsync.Choice `json:"choices,omitempty"`
}

// FormView is the renderer input for the form.
type FormView struct {
	Action   string        `json:"action"`
	Method   string        `json:"method"`
	Summary  string        `json:"summary,omitempty"`
	Controls []FormControl `json:"controls"`
}

// NewFormView snapshots the form state for rendering.
func NewFormView(form *formsync.Form) FormView {
	spec := form.Model()
	view := FormView{
		Action:  spec.Endpoint,
		Method:  spec.Method,
		Summary: spec.Summary,
	}
	for _, control := range form.Controls() {
		field, _ := spec.Field(control.Name)
		view.Controls = append(view.Controls, FormControl{
			Name:        control.Name,
			Kind:        control.Kind,
			Hidden:      control.Kind == model.FieldKindHidden,
			Multi:       control.Kind.MultiValue(),
			Required:    field.Required,
			Label:       field.Label,
			Placeholder: field.Placeholder,
			Description: field.Description,
			Value:       control.Value,
			Choices:     control.Choices,
		})
	}
	return view
}

// PageView is the renderer input for the whole page.
type PageView struct {
	Title string   `json:"title"`
	Mode  string   `json:"mode"`
	Label string   `json:"label"`
	Form  FormView `json:"form"`
	List  ListView `json:"list"`
}
