package vanilla

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/formsync"
	"github.com/goliatone/go-contacts/pkg/render"
	"github.com/goliatone/go-contacts/pkg/testsupport"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func seededRecords(t *testing.T) []contact.Record {
	t.Helper()
	c := contact.New(testsupport.SeedFields(), contact.WithIDGenerator(testsupport.SequentialIDs()))
	return c.All()
}

func pageView(t *testing.T, mode, label string, records []contact.Record) render.PageView {
	t.Helper()
	form := formsync.New(testsupport.ContactFormModel())
	return render.PageView{
		Mode:  mode,
		Label: label,
		Form:  render.NewFormView(form),
		List:  render.NewListView(records),
	}
}

func TestRenderListEmptyPlaceholder(t *testing.T) {
	r := newRenderer(t)

	out, err := r.RenderList(testsupport.Context(), render.NewListView(nil), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<p>No items to display</p>") {
		t.Fatalf("expected empty placeholder, got:\n%s", html)
	}
	if strings.Contains(html, string(ClassListItem)) {
		t.Fatalf("empty list rendered items:\n%s", html)
	}
}

func TestRenderListEntriesCarryIDs(t *testing.T) {
	r := newRenderer(t)

	out, err := r.RenderList(testsupport.Context(), render.NewListView(seededRecords(t)), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	html := string(out)

	if got := strings.Count(html, `class="list-group-item"`); got != 3 {
		t.Fatalf("expected 3 list items, got %d:\n%s", got, html)
	}
	for _, want := range []string{
		`Acer.com, acer@acer.com`,
		`href="/contacts/id-2/edit"`,
		`action="/contacts/id-3/delete"`,
		`data-action="edit" data-id="id-1"`,
		`data-action="delete" data-id="id-1"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in list output:\n%s", want, html)
		}
	}
	if strings.Index(html, "Acer.com") > strings.Index(html, "Marker.com") {
		t.Fatalf("entries out of order:\n%s", html)
	}
}

func TestRenderListEscapesDisplayText(t *testing.T) {
	r := newRenderer(t)

	view := render.NewListView([]contact.Record{{ID: "x", Name: `<b>bold</b>`}})
	out, err := r.RenderList(testsupport.Context(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	if strings.Contains(string(out), "<b>bold</b>") {
		t.Fatalf("display text was not escaped:\n%s", out)
	}
}

func TestRenderListUsesBasePathAndTranslations(t *testing.T) {
	r := newRenderer(t, WithBasePath("/app/"))

	options := render.RenderOptions{
		Locale: "es",
		Translator: translatorFunc(func(_ string, key string, _ ...any) (string, error) {
			if key == render.KeyEdit {
				return "Editar", nil
			}
			return "", render.ErrMissingTranslator
		}),
	}
	out, err := r.RenderList(testsupport.Context(), render.NewListView(seededRecords(t)), options)
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `href="/app/contacts/id-1/edit"`) {
		t.Fatalf("expected base path in links:\n%s", html)
	}
	if !strings.Contains(html, ">Editar</span>") || !strings.Contains(html, ">Delete</span>") {
		t.Fatalf("expected translated edit and default delete labels:\n%s", html)
	}
}

type translatorFunc func(locale, key string, args ...any) (string, error)

func (f translatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

func TestIconsAreSanitised(t *testing.T) {
	r := newRenderer(t, WithIcons(Icons{
		Edit: `<svg onload="alert(1)"><script>alert(2)</script><path d="M0 0h1"/></svg>`,
	}))

	out, err := r.RenderList(testsupport.Context(), render.NewListView(seededRecords(t)), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "onload") || strings.Contains(html, "<script>") {
		t.Fatalf("icon markup not sanitised:\n%s", html)
	}
	if !strings.Contains(html, "<path") {
		t.Fatalf("expected svg shapes to survive sanitising:\n%s", html)
	}
}

func TestRenderPageAddMode(t *testing.T) {
	r := newRenderer(t)

	out, err := r.RenderPage(testsupport.Context(), pageView(t, "add", "Add", seededRecords(t)), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Contacts</title>",
		`<span class="action-type">Add</span>`,
		`<input type="hidden" name="id" value="">`,
		`placeholder="Jon Smith"`,
		`id="contacts-list"`,
		`src="/assets/contacts.js"`,
		`href="/assets/contacts.css"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
	if strings.Contains(html, `formaction="/form/reset"`) {
		t.Fatalf("cancel control should only show while editing:\n%s", html)
	}
}

func TestRenderPageEditModeWithMessages(t *testing.T) {
	r := newRenderer(t)

	records := seededRecords(t)
	page := pageView(t, "edit", "Update", records)
	for i := range page.Form.Controls {
		if page.Form.Controls[i].Name == contact.FieldName {
			page.Form.Controls[i].Value = records[0].Name
		}
	}
	options := render.RenderOptions{Messages: render.MapError(contact.ErrNotFound)}

	out, err := r.RenderPage(testsupport.Context(), page, options)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<span class="action-type">Update</span>`,
		`value="Acer.com"`,
		`formaction="/form/reset"`,
		`class="contacts-errors"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page:\n%s", want, html)
		}
	}
	for _, message := range options.Messages {
		if !strings.Contains(html, message) {
			t.Fatalf("expected message %q in page:\n%s", message, html)
		}
	}
}

func TestRenderPageThemeTokens(t *testing.T) {
	selector, err := NewThemeSelector(DefaultThemeManifest())
	if err != nil {
		t.Fatalf("theme selector: %v", err)
	}
	light, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select light: %v", err)
	}
	dark, err := selector.Select("contacts", "dark")
	if err != nil {
		t.Fatalf("select dark: %v", err)
	}
	if _, err := selector.Select("contacts", "sepia"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}

	r := newRenderer(t, WithTheme(light))
	page := pageView(t, "add", "Add", nil)

	out, err := r.RenderPage(testsupport.Context(), page, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render light: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "--brand: #0d6efd;") || !strings.Contains(html, "--surface: #ffffff;") {
		t.Fatalf("expected light tokens:\n%s", html)
	}
	if !strings.Contains(html, `data-theme="contacts"`) {
		t.Fatalf("expected theme name on body:\n%s", html)
	}

	out, err = r.RenderPage(testsupport.Context(), page, render.RenderOptions{Theme: dark})
	if err != nil {
		t.Fatalf("render dark: %v", err)
	}
	html = string(out)
	if !strings.Contains(html, "--surface: #1e2125;") || !strings.Contains(html, "--brand: #0d6efd;") {
		t.Fatalf("expected dark surface over base tokens:\n%s", html)
	}
	if !strings.Contains(html, `data-variant="dark"`) {
		t.Fatalf("expected variant on body:\n%s", html)
	}
}

func TestCSSVarsStyleDropsBreakoutCharacters(t *testing.T) {
	got := cssVarsStyle(cssVars(map[string]string{
		"brand": "red; } body { display:none",
		"text":  "</style><script>",
	}))
	for _, banned := range []string{";}", "{", "}", "<", ">"} {
		if strings.Contains(got, banned) {
			t.Fatalf("style %q contains %q", got, banned)
		}
	}
	if !strings.HasPrefix(got, "--brand: red") {
		t.Fatalf("unexpected style %q", got)
	}
}

func TestTemplatesDirOverridesEmbeddedPartials(t *testing.T) {
	dir := t.TempDir()
	override := `{% if list.empty %}<p class="custom">{{ text.empty }}</p>{% else %}custom{% endif %}`
	if err := os.WriteFile(filepath.Join(dir, "list.tmpl"), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	r := newRenderer(t, WithTemplatesDir(dir))
	out, err := r.RenderList(testsupport.Context(), render.NewListView(nil), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	if !strings.Contains(string(out), `<p class="custom">No items to display</p>`) {
		t.Fatalf("expected override template output, got:\n%s", out)
	}

	// page.tmpl still comes from the embedded bundle and includes the override.
	page, err := r.RenderPage(testsupport.Context(), pageView(t, "add", "Add", nil), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if !strings.Contains(string(page), `class="custom"`) {
		t.Fatalf("expected page to include the override list:\n%s", page)
	}
}

func TestTemplatesDirMustExist(t *testing.T) {
	if _, err := New(WithTemplatesDir(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatalf("expected error for missing templates dir")
	}
}

func TestAssetsFSServesStylesheetAndRuntime(t *testing.T) {
	css, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(css), ".list-group-item") {
		t.Fatalf("stylesheet missing list styles")
	}
	js, err := fs.ReadFile(AssetsFS(), RuntimeScriptName)
	if err != nil {
		t.Fatalf("read runtime: %v", err)
	}
	if !strings.Contains(string(js), "X-Contacts-Fragment") {
		t.Fatalf("runtime script missing fragment header")
	}
}
