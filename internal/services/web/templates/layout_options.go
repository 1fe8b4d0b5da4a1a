package templates

import webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"

// LayoutOptions configures the app layout.
type LayoutOptions struct {
	Title        string
	Lang         string
	Loc          webi18n.Localizer
	CurrentPath  string
	CurrentQuery string
}

// LayoutOptionsForPage builds the shared layout options from a page context and title key.
func LayoutOptionsForPage(page PageContext, titleKey string) LayoutOptions {
	return LayoutOptions{
		Title:        webi18n.T(page.Loc, webi18n.KeyLayoutTitle, webi18n.T(page.Loc, titleKey)),
		Lang:         page.Lang,
		Loc:          page.Loc,
		CurrentPath:  page.CurrentPath,
		CurrentQuery: page.CurrentQuery,
	}
}
