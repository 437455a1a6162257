package tui

import (
	"net/url"

	"github.com/goliatone/go-contacts/pkg/formsync"
	"github.com/goliatone/go-contacts/pkg/model"
)

// answers collects prompt results for one pass over the form. It starts from
// the form's current state, so controls that are never prompted (the hidden
// id) keep their value on submit.
type answers struct {
	values url.Values
}

func newAnswers(form *formsync.Form) *answers {
	a := &answers{values: url.Values{}}
	for _, control := range form.Controls() {
		if control.Kind.MultiValue() {
			for _, choice := range control.Choices {
				if choice.Selected {
					a.values.Add(control.Name, choice.Value)
				}
			}
			continue
		}
		a.values.Set(control.Name, control.Value)
	}
	return a
}

func (a *answers) set(name, value string) {
	a.values.Set(name, value)
}

func (a *answers) setMany(name string, values []string) {
	a.values.Del(name)
	for _, value := range values {
		a.values.Add(name, value)
	}
}

// selectedIndices returns the positions of the choices currently selected.
func selectedIndices(control formsync.Control) []int {
	var out []int
	for i, choice := range control.Choices {
		if choice.Selected {
			out = append(out, i)
		}
	}
	return out
}

func choiceLabels(control formsync.Control) []string {
	out := make([]string, len(control.Choices))
	for i, choice := range control.Choices {
		out[i] = choice.Label
	}
	return out
}

func promptable(kind model.FieldKind) bool {
	return kind != model.FieldKindHidden
}
