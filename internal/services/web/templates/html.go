package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HTMLWriter writes markup and keeps the first write error.
type HTMLWriter struct {
	w   io.Writer
	err error
}

// NewHTMLWriter wraps w.
func NewHTMLWriter(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

// Raw writes trusted markup.
func (h *HTMLWriter) Raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

// Text writes escaped text.
func (h *HTMLWriter) Text(value string) {
	h.Raw(templ.EscapeString(value))
}

// Attr writes ` name="value"` with value escaped.
func (h *HTMLWriter) Attr(name, value string) {
	h.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// BoolAttr writes ` name` when on.
func (h *HTMLWriter) BoolAttr(name string, on bool) {
	if on {
		h.Raw(" ", name)
	}
}

// Class writes a class attribute from the non-empty names.
func (h *HTMLWriter) Class(names ...string) {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	if len(kept) > 0 {
		h.Attr("class", strings.Join(kept, " "))
	}
}

// Render renders a child component.
func (h *HTMLWriter) Render(ctx context.Context, component templ.Component) {
	if h.err != nil || component == nil {
		return
	}
	h.err = component.Render(ctx, h.w)
}

// Err returns the first write error.
func (h *HTMLWriter) Err() error {
	return h.err
}
