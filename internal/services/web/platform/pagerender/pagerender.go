// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/vinylcourses/coursehub/internal/services/web/platform/httpx"
	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	webtemplates "github.com/vinylcourses/coursehub/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	TitleKey   string
	StatusCode int
	Fragment   templ.Component
	// Loc and Lang are resolved from the request when Loc is nil.
	Loc  webi18n.Localizer
	Lang string
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using shared app-shell rendering contracts.
// HTMX requests receive the fragment alone.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
		return httpx.WriteHTML(w, statusCode, buf.String())
	}

	opts := webtemplates.LayoutOptionsForPage(webtemplates.NewPageContext(r, loc, lang), page.TitleKey)
	if err := webtemplates.AppLayout(opts).Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}
