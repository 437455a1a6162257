package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contacts/pkg/render"
	rendertemplate "github.com/goliatone/go-contacts/pkg/render/template"
	"github.com/goliatone/go-contacts/pkg/render/template/engine"
)

const (
	pageTemplate = "page"
	listTemplate = "list"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	icons            Icons
	theme            *theme.Selection
	basePath         string
	assetsPath       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must hold page.tmpl and list.tmpl at its root along with any partial they
// include.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a flat directory on disk, falling back
// to the embedded bundle for any file the directory lacks.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = path
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithIcons replaces the edit and delete glyphs. Empty entries keep the
// defaults.
func WithIcons(icons Icons) Option {
	return func(cfg *config) {
		if icons.Edit != "" {
			cfg.icons.Edit = icons.Edit
		}
		if icons.Delete != "" {
			cfg.icons.Delete = icons.Delete
		}
	}
}

// WithTheme sets the default theme selection. RenderOptions.Theme wins when
// present.
func WithTheme(selection *theme.Selection) Option {
	return func(cfg *config) {
		cfg.theme = selection
	}
}

// WithBasePath mounts the routes used by links and forms under a prefix.
func WithBasePath(base string) Option {
	return func(cfg *config) {
		cfg.basePath = normalizeBasePath(base)
	}
}

// WithAssetsPath sets where AssetsFS is served. Defaults to "/assets".
func WithAssetsPath(p string) Option {
	return func(cfg *config) {
		if p != "" {
			cfg.assetsPath = normalizeBasePath(p)
		}
	}
}

// Renderer renders the contact page and list as HTML.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	icons     map[string]string
	theme     *theme.Selection
	basePath  string
	assets    string
}

var _ render.PageRenderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		icons:      DefaultIcons(),
		assetsPath: "/assets",
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engineOpts := []engine.Option{
			engine.WithName("vanilla"),
			engine.WithFS(cfg.templateFS),
		}
		if cfg.templatesDir != "" {
			if _, err := os.Stat(cfg.templatesDir); err != nil {
				return nil, fmt.Errorf("vanilla renderer: templates dir: %w", err)
			}
			engineOpts = append(engineOpts, engine.WithBaseDir(cfg.templatesDir))
		}
		e, err := engine.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = e
	}

	return &Renderer{
		templates: templates,
		icons:     cfg.icons.sanitized(),
		theme:     cfg.theme,
		basePath:  cfg.basePath,
		assets:    cfg.assetsPath,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderList renders the list fragment: the empty-state paragraph, or one
// list item per entry with edit and delete controls keyed by id.
func (r *Renderer) RenderList(_ context.Context, view render.ListView, options render.RenderOptions) ([]byte, error) {
	data := r.baseContext(options)
	data["list"] = view
	return r.execute(listTemplate, data)
}

// RenderPage renders the complete document.
func (r *Renderer) RenderPage(_ context.Context, page render.PageView, options render.RenderOptions) ([]byte, error) {
	if page.Title == "" {
		page.Title = options.Text(render.KeyTitle)
	}
	data := r.baseContext(options)
	data["page"] = page
	data["form"] = page.Form
	data["list"] = page.List
	data["messages"] = render.MergeFormErrors(options.Messages)
	return r.execute(pageTemplate, data)
}

func (r *Renderer) execute(name string, data map[string]any) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	result, err := r.templates.Render(name, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render %s: %w", name, err)
	}
	return []byte(result), nil
}

func (r *Renderer) baseContext(options render.RenderOptions) map[string]any {
	selection := r.theme
	if options.Theme != nil {
		selection = options.Theme
	}
	fallbackStylesheet := r.assets + "/" + StylesheetName

	return map[string]any{
		"base":    r.basePath,
		"classes": chromeClasses(),
		"icons":   r.icons,
		"theme":   buildThemeContext(selection, fallbackStylesheet),
		"assets": map[string]string{
			"script": r.assets + "/" + RuntimeScriptName,
		},
		"text": map[string]string{
			"empty":  options.Text(render.KeyEmptyList),
			"edit":   options.Text(render.KeyEdit),
			"delete": options.Text(render.KeyDelete),
			"cancel": options.Text(render.KeyCancel),
		},
	}
}
