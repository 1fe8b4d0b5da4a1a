package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// AppLayout renders the full document around the children in ctx.
func AppLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		h.Raw("<!DOCTYPE html><html")
		h.Attr("lang", opts.Lang)
		h.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.Text(opts.Title)
		h.Raw(`</title><link rel="stylesheet" href="`, routepath.StaticPrefix, `app.css"><script defer src="`, htmxScriptURL, `"></script></head><body>`)
		h.Raw(`<div class="courses-page">`)
		h.Render(ctx, AppHeader(opts))
		h.Raw(`<main id="main-content">`)
		h.Render(ctx, templ.GetChildren(ctx))
		h.Raw(`</main>`)
		h.Render(ctx, appFooter(opts))
		h.Raw(`</div></body></html>`)
		return h.Err()
	})
}

// AppHeader renders the logo and main navigation.
func AppHeader(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		h.Raw(`<header class="main-header"><div class="header-content"><a class="logo"`)
		h.Attr("href", routepath.Main)
		h.Raw(`><div class="vinyl-logo">`, vinylLogoSVG, `</div></a><nav class="main-nav">`)
		for _, link := range MainNav() {
			h.Raw("<a")
			h.Attr("href", link.Href)
			if isNavActive(opts.CurrentPath, link.Href) {
				h.Class("nav-link", "active")
				h.Attr("aria-current", "page")
			} else {
				h.Class("nav-link")
			}
			h.Raw(">")
			h.Text(webi18n.T(opts.Loc, link.LabelKey))
			h.Raw("</a>")
		}
		h.Raw(`</nav></div></header>`)
		return h.Err()
	})
}

func appFooter(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		h.Raw(`<footer class="main-footer"><nav class="language-switch">`)
		for _, option := range LanguageOptions(opts) {
			h.Raw("<a")
			h.Attr("href", option.URL)
			h.Attr("hreflang", option.Tag)
			if option.Active {
				h.Class("language-option", "active")
			} else {
				h.Class("language-option")
			}
			h.Raw(">")
			h.Text(option.Label)
			h.Raw("</a>")
		}
		h.Raw(`</nav></footer>`)
		return h.Err()
	})
}

const vinylLogoSVG = `<svg class="vinyl-disc" viewBox="0 0 120 120" xmlns="http://www.w3.org/2000/svg" aria-hidden="true">` +
	`<defs><mask id="c-cutout-header"><rect width="120" height="120" fill="white"/>` +
	`<path d="M 60 15 A 35 35 0 0 1 60 105 L 50 105 A 25 25 0 0 0 50 15 Z" fill="black"/></mask></defs>` +
	`<circle cx="60" cy="60" r="50" fill="#2a2a2a" mask="url(#c-cutout-header)"/>` +
	`<circle cx="60" cy="60" r="42" fill="none" stroke="#3a3a3a" stroke-width="0.5" mask="url(#c-cutout-header)"/>` +
	`<circle cx="60" cy="60" r="30" fill="none" stroke="#3a3a3a" stroke-width="0.5" mask="url(#c-cutout-header)"/>` +
	`<circle cx="60" cy="60" r="18" fill="none" stroke="#3a3a3a" stroke-width="0.5" mask="url(#c-cutout-header)"/>` +
	`<circle cx="60" cy="60" r="6" fill="#1a1a1a" mask="url(#c-cutout-header)"/></svg>`
