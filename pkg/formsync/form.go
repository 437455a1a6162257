package formsync

import (
	"net/url"

	"github.com/goliatone/go-contacts/pkg/model"
)

// checkboxOn is the value browsers submit for a checkbox without one.
const checkboxOn = "on"

// Choice is one option of a multi-value control.
type Choice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Control is the live state of one form control.
type Control struct {
	Name    string          `json:"name"`
	Kind    model.FieldKind `json:"kind"`
	Value   string          `json:"value"`
	Default string          `json:"default,omitempty"`
	Choices []Choice        `json:"choices,omitempty"`
}

func (c Control) clone() Control {
	c.Choices = append([]Choice(nil), c.Choices...)
	return c
}

func (c *Control) selected() []string {
	var out []string
	for _, choice := range c.Choices {
		if choice.Selected {
			out = append(out, choice.Value)
		}
	}
	return out
}

func (c *Control) selectOnly(values []string) {
	wanted := make(map[string]struct{}, len(values))
	for _, value := range values {
		wanted[value] = struct{}{}
	}
	for i := range c.Choices {
		_, ok := wanted[c.Choices[i].Value]
		c.Choices[i].Selected = ok
	}
}

func (c *Control) reset() {
	c.Value = c.Default
	if c.Kind == model.FieldKindHidden {
		c.Value = ""
	}
	for i := range c.Choices {
		c.Choices[i].Selected = false
	}
}

// Form holds ordered controls for one form model.
type Form struct {
	model    model.FormModel
	controls []Control
	index    map[string]int
}

// New builds a form in its cleared state. A field's "default" metadata entry
// becomes the control default; checkbox fields without options get a single
// "on" box.
func New(form model.FormModel) *Form {
	f := &Form{
		model:    form.Clone(),
		controls: make([]Control, 0, len(form.Fields)),
		index:    make(map[string]int, len(form.Fields)),
	}
	for _, field := range form.Fields {
		control := Control{
			Name:    field.Name,
			Kind:    field.Kind,
			Default: field.Metadata["default"],
		}
		if field.Kind.MultiValue() {
			for _, opt := range field.Options {
				label := opt.Label
				if label == "" {
					label = opt.Value
				}
				control.Choices = append(control.Choices, Choice{Value: opt.Value, Label: label})
			}
			if len(control.Choices) == 0 && field.Kind == model.FieldKindCheckbox {
				control.Choices = []Choice{{Value: checkboxOn, Label: field.Label}}
			}
		}
		control.reset()
		f.index[field.Name] = len(f.controls)
		f.controls = append(f.controls, control)
	}
	return f
}

// Model returns a copy of the form model the form was built from.
func (f *Form) Model() model.FormModel {
	return f.model.Clone()
}

// Controls returns a copy of every control in declaration order.
func (f *Form) Controls() []Control {
	out := make([]Control, len(f.controls))
	for i, control := range f.controls {
		out[i] = control.clone()
	}
	return out
}

// Control returns a copy of the named control.
func (f *Form) Control(name string) (Control, bool) {
	idx, ok := f.index[name]
	if !ok {
		return Control{}, false
	}
	return f.controls[idx].clone(), true
}

// Value returns the displayed value of a text-like control, or "".
func (f *Form) Value(name string) string {
	if idx, ok := f.index[name]; ok {
		return f.controls[idx].Value
	}
	return ""
}

// Populate sets the displayed state of every control named in values. Text
// controls show multiple values joined with ", "; multi-value controls mark
// the matching choices. Names without a control are skipped.
func (f *Form) Populate(values model.Values) {
	for name, entries := range values {
		idx, ok := f.index[name]
		if !ok {
			continue
		}
		control := &f.controls[idx]
		if control.Kind.MultiValue() {
			control.selectOnly(entries)
			continue
		}
		control.Value = model.JoinList(entries)
	}
}

// Extract reads every control into a flat mapping, as a browser submission
// would: text controls always yield their value, multi-value controls yield
// their selected choices in order and are omitted when nothing is selected.
func (f *Form) Extract() model.Values {
	values := make(model.Values, len(f.controls))
	for i := range f.controls {
		control := &f.controls[i]
		if control.Kind.MultiValue() {
			if selected := control.selected(); len(selected) > 0 {
				values.Set(control.Name, selected...)
			}
			continue
		}
		values.Set(control.Name, control.Value)
	}
	return values
}

// Clear resets every control to its default. Hidden controls are always
// emptied.
func (f *Form) Clear() {
	for i := range f.controls {
		f.controls[i].reset()
	}
}

// Submit applies a browser submission. Controls missing from the submission
// end up empty or unselected; repeated names on a text control are joined
// with ", "; names without a control are ignored.
func (f *Form) Submit(submission url.Values) {
	for i := range f.controls {
		control := &f.controls[i]
		entries := submission[control.Name]
		if control.Kind.MultiValue() {
			control.selectOnly(entries)
			continue
		}
		control.Value = model.JoinList(entries)
	}
}
