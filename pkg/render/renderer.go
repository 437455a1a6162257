package render

import "context"

// ListRenderer projects the current collection into a byte representation
// (an HTML fragment, terminal lines). Every call produces the complete list;
// callers replace whatever they displayed before.
type ListRenderer interface {
	Name() string
	ContentType() string
	RenderList(ctx context.Context, view ListView, options RenderOptions) ([]byte, error)
}

// PageRenderer renders the full page: the mode label, the form and the list.
type PageRenderer interface {
	ListRenderer
	RenderPage(ctx context.Context, page PageView, options RenderOptions) ([]byte, error)
}
