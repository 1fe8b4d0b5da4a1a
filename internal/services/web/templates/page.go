package templates

import (
	"net/http"
	"strings"

	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          webi18n.Localizer
	CurrentPath  string
	CurrentQuery string
}

// NewPageContext builds the page context for r.
func NewPageContext(r *http.Request, loc webi18n.Localizer, lang string) PageContext {
	page := PageContext{Lang: lang, Loc: loc}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// NavLink is one entry of the main navigation.
type NavLink struct {
	Href     string
	LabelKey string
}

// MainNav lists the header navigation in display order.
func MainNav() []NavLink {
	return []NavLink{
		{Href: routepath.Main, LabelKey: webi18n.KeyNavHome},
		{Href: routepath.Courses, LabelKey: webi18n.KeyNavCourses},
		{Href: routepath.Profile, LabelKey: webi18n.KeyNavProfile},
	}
}

func isNavActive(currentPath, href string) bool {
	currentPath = strings.TrimSpace(currentPath)
	if currentPath == href {
		return true
	}
	return strings.HasPrefix(currentPath, href+"/")
}
