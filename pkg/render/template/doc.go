// Package template defines the renderer-agnostic template interface. The
// engine subpackage provides the pongo2-backed implementation the HTML
// renderer uses by default.
package template
