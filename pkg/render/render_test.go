package render_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/formsync"
	"github.com/goliatone/go-contacts/pkg/model"
	"github.com/goliatone/go-contacts/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) RenderList(context.Context, render.ListView, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

type stubPageRenderer struct{ stubRenderer }

func (s stubPageRenderer) RenderPage(context.Context, render.PageView, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestRegistryRejectsDuplicatesAndListsSorted(t *testing.T) {
	registry, err := render.NewRegistry(stubRenderer{name: "text"}, stubPageRenderer{stubRenderer{name: "html"}})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "text"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if diff := cmp.Diff([]string{"html", "text"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	if _, err := registry.Page("html"); err != nil {
		t.Fatalf("page renderer: %v", err)
	}
	if _, err := registry.Page("text"); err == nil {
		t.Fatalf("expected error for list-only renderer")
	}
	if _, err := registry.Get("pdf"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestNewListViewKeepsOrder(t *testing.T) {
	view := render.NewListView([]contact.Record{
		{ID: "1", Name: "Acer.com", Email: "acer@acer.com"},
		{ID: "2", Name: "Sprint.com"},
	})
	want := render.ListView{Entries: []render.ListEntry{
		{ID: "1", Name: "Acer.com", Email: "acer@acer.com", Display: "Acer.com, acer@acer.com"},
		{ID: "2", Name: "Sprint.com", Display: "Sprint.com"},
	}}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
	if !render.NewListView(nil).Empty {
		t.Fatalf("expected empty view for no records")
	}
}

func TestNewFormViewJoinsStateAndPresentation(t *testing.T) {
	form := formsync.New(model.FormModel{
		Endpoint: "/contacts",
		Method:   "POST",
		Fields: []model.Field{
			{Name: "id", Kind: model.FieldKindHidden, Label: "Id"},
			{Name: "name", Kind: model.FieldKindText, Label: "Name", Placeholder: "Jon Smith", Required: true},
		},
	})
	form.Populate(model.Values{"id": {"id-1"}, "name": {"Acer"}})

	view := render.NewFormView(form)
	want := render.FormView{
		Action: "/contacts",
		Method: "POST",
		Controls: []render.FormControl{
			{Name: "id", Kind: model.FieldKindHidden, Hidden: true, Label: "Id", Value: "id-1"},
			{Name: "name", Kind: model.FieldKindText, Required: true, Label: "Name", Placeholder: "Jon Smith", Value: "Acer"},
		},
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("form view mismatch (-want +got):\n%s", diff)
	}
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err  error
		want []string
	}{
		{nil, nil},
		{fmt.Errorf("edit x: %w", contact.ErrNotFound), []string{"The contact no longer exists."}},
		{fmt.Errorf("edit: %w", contact.ErrInvalidArgument), []string{"A contact id is required."}},
		{fmt.Errorf("add: %w", contact.ErrInvalidInput), []string{"The submitted contact could not be read."}},
		{errors.New("  disk on fire "), []string{"disk on fire"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, render.MapError(tc.err)); diff != "" {
			t.Errorf("MapError(%v) mismatch (-want +got):\n%s", tc.err, diff)
		}
	}
}

func TestMergeFormErrorsDedupes(t *testing.T) {
	got := render.MergeFormErrors([]string{"a", " b "}, "b", "", "c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOptionsTextFallsBack(t *testing.T) {
	opts := render.RenderOptions{}
	if got := opts.Text(render.KeyEmptyList); got != "No items to display" {
		t.Fatalf("default empty text = %q", got)
	}

	opts = render.RenderOptions{Locale: "es", Translator: stubTranslator{render.KeyEdit: "Editar"}}
	if got := opts.Text(render.KeyEdit); got != "Editar" {
		t.Fatalf("translated edit = %q", got)
	}
	if got := opts.Text(render.KeyDelete); got != "Delete" {
		t.Fatalf("missing translation should fall back, got %q", got)
	}
	if got := opts.Text("unknown.key"); got != "unknown.key" {
		t.Fatalf("unknown key should echo, got %q", got)
	}
}
