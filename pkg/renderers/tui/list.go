package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-contacts/pkg/render"
)

// ListRenderer prints the record list as styled text, one line per entry.
type ListRenderer struct {
	theme Theme
}

var _ render.ListRenderer = (*ListRenderer)(nil)

// NewListRenderer builds a text list renderer with the given theme.
func NewListRenderer(theme Theme) *ListRenderer {
	return &ListRenderer{theme: theme}
}

func (r *ListRenderer) Name() string {
	return "text"
}

func (r *ListRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// RenderList prints the placeholder for an empty view, otherwise a numbered
// line per entry with its id.
func (r *ListRenderer) RenderList(ctx context.Context, view render.ListView, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view.Empty || len(view.Entries) == 0 {
		return []byte(r.theme.Empty.Render(options.Text(render.KeyEmptyList)) + "\n"), nil
	}

	var b strings.Builder
	b.WriteString(r.theme.Title.Render(options.Text(render.KeyTitle)))
	b.WriteString("\n")
	width := len(fmt.Sprint(len(view.Entries)))
	for i, entry := range view.Entries {
		index := fmt.Sprintf("%*d%s", width, i+1, r.theme.Bullet)
		fmt.Fprintf(&b, "%s %s %s\n",
			r.theme.Index.Render(index),
			r.theme.Entry.Render(entry.Display),
			r.theme.ID.Render("["+entry.ID+"]"),
		)
	}
	return []byte(b.String()), nil
}
