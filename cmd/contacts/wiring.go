package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	contacts "github.com/goliatone/go-contacts"
	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/controller"
	"github.com/goliatone/go-contacts/pkg/formsync"
	"github.com/goliatone/go-contacts/pkg/orchestrator"
	"github.com/goliatone/go-contacts/pkg/render"
	"github.com/goliatone/go-contacts/pkg/renderers/tui"
	"github.com/goliatone/go-contacts/pkg/renderers/vanilla"
)

// newOrchestrator builds the form pipeline with the HTML and text renderers
// registered and the configured preset applied.
func (a *app) newOrchestrator(html *vanilla.Renderer) (*orchestrator.Orchestrator, error) {
	registry, err := render.NewRegistry(html, tui.NewListRenderer(tui.DefaultTheme()))
	if err != nil {
		return nil, fmt.Errorf("renderer registry: %w", err)
	}
	opts := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(html.Name()),
	}
	if path := a.cfg.UI.FormPreset; path != "" {
		preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return nil, err
		}
		opts = append(opts, orchestrator.WithSchemaTransformer(preset))
	}
	return contacts.NewOrchestrator(opts...), nil
}

// htmlRenderer builds the vanilla renderer for the configured base path,
// templates and theme.
func (a *app) htmlRenderer() (*vanilla.Renderer, error) {
	base := a.cfg.UI.BasePath
	if base == "/" {
		base = ""
	}
	opts := []vanilla.Option{
		vanilla.WithBasePath(base),
		vanilla.WithAssetsPath(base + "/assets"),
	}
	if dir := a.cfg.UI.TemplatesDir; dir != "" {
		opts = append(opts, vanilla.WithTemplatesDir(dir))
	}
	selection, err := a.themeSelection()
	if err != nil {
		return nil, err
	}
	if selection != nil {
		opts = append(opts, vanilla.WithTheme(selection))
	}
	return vanilla.New(opts...)
}

func (a *app) themeSelection() (*theme.Selection, error) {
	if a.cfg.Theme.Name == "" {
		return nil, nil
	}
	selector, err := vanilla.NewThemeSelector(vanilla.DefaultThemeManifest())
	if err != nil {
		return nil, err
	}
	selection, err := selector.Select(a.cfg.Theme.Name, a.cfg.Theme.Variant)
	if err != nil {
		return nil, fmt.Errorf("theme %s/%s: %w", a.cfg.Theme.Name, a.cfg.Theme.Variant, err)
	}
	return selection, nil
}

// newCollection seeds the contact list from the configured file or the bundled
// seed. An empty seed file yields an empty list.
func (a *app) newCollection() (*contact.Collection, error) {
	opts := []contact.Option{contact.WithLogger(a.logger.Named("contact"))}
	var (
		collection *contact.Collection
		err        error
	)
	if path := a.cfg.Seed.Path; path != "" {
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read seed: %w", readErr)
		}
		collection, err = contact.NewFromSeed(raw, opts...)
	} else {
		collection, err = contacts.NewCollection(nil, opts...)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("collection seeded", zap.Int("contacts", collection.Len()))
	return collection, nil
}

// newController builds the form from the endpoint description and binds it to
// the seeded collection.
func (a *app) newController(ctx context.Context, orch *orchestrator.Orchestrator) (*controller.Controller, error) {
	formModel, err := contacts.ContactForm(ctx, orch)
	if err != nil {
		return nil, err
	}
	collection, err := a.newCollection()
	if err != nil {
		return nil, err
	}
	return controller.New(collection, formsync.New(formModel),
		controller.WithLogger(a.logger.Named("controller")),
	)
}
