package vanilla

import (
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// stylesheetAssetKey names the manifest asset holding the page stylesheet.
const stylesheetAssetKey = "vanilla.stylesheet"

// DefaultThemeManifest describes the built-in look: a light palette plus a
// "dark" variant that swaps surface and text tokens.
func DefaultThemeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "contacts",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#0d6efd",
			"danger":  "#dc3545",
			"surface": "#ffffff",
			"text":    "#212529",
			"muted":   "#6c757d",
			"border":  "#dee2e6",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				stylesheetAssetKey: StylesheetName,
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"surface": "#1e2125",
					"text":    "#f8f9fa",
					"muted":   "#adb5bd",
					"border":  "#495057",
				},
			},
		},
	}
}

// ThemeSelector resolves theme and variant names against registered
// manifests.
type ThemeSelector struct {
	manifests map[string]*theme.Manifest
	fallback  string
}

var _ theme.ThemeSelector = (*ThemeSelector)(nil)

// NewThemeSelector registers manifests; the first one is the default theme.
func NewThemeSelector(manifests ...*theme.Manifest) (*ThemeSelector, error) {
	s := &ThemeSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			return nil, fmt.Errorf("vanilla theme: manifest name is required")
		}
		if _, dup := s.manifests[manifest.Name]; dup {
			return nil, fmt.Errorf("vanilla theme: manifest %q already registered", manifest.Name)
		}
		if s.fallback == "" {
			s.fallback = manifest.Name
		}
		s.manifests[manifest.Name] = manifest
	}
	return s, nil
}

// Select returns the named theme, or the default one when name is empty. An
// empty variant selects the base tokens.
func (s *ThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = s.fallback
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("vanilla theme: theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("vanilla theme: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// themeContext is the template view of a selection.
type themeContext struct {
	Name       string `json:"name"`
	Variant    string `json:"variant"`
	Style      string `json:"style"`
	Stylesheet string `json:"stylesheet"`
}

func buildThemeContext(selection *theme.Selection, fallbackStylesheet string) themeContext {
	ctx := themeContext{Stylesheet: fallbackStylesheet}
	if selection == nil || selection.Manifest == nil {
		return ctx
	}
	manifest := selection.Manifest
	ctx.Name = selection.Theme
	ctx.Variant = selection.Variant

	tokens := copyStringMap(manifest.Tokens)
	files := copyStringMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		for key, value := range variant.Assets.Files {
			files[key] = value
		}
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	ctx.Style = cssVarsStyle(cssVars(tokens))
	if file := files[stylesheetAssetKey]; file != "" {
		ctx.Stylesheet = assetURL(prefix, file)
	}
	return ctx
}

// cssVars maps tokens to custom property names ("brand" → "--brand").
func cssVars(tokens map[string]string) map[string]string {
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

// cssVarsStyle renders declarations in name order. Characters that could end
// the declaration or the style element are dropped from values.
func cssVarsStyle(vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	clean := strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "")
	var b strings.Builder
	for _, name := range names {
		value := strings.TrimSpace(clean.Replace(vars[name]))
		if value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s; ", clean.Replace(name), value)
	}
	return strings.TrimSpace(b.String())
}

func assetURL(prefix, file string) string {
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	if prefix == "" {
		return file
	}
	if strings.Contains(prefix, "://") {
		return strings.TrimSuffix(prefix, "/") + "/" + file
	}
	return path.Join(prefix, file)
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
