package templates

import (
	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(opts LayoutOptions) []LanguageOption {
	supported := webi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		value := tag.String()
		options = append(options, LanguageOption{
			Tag:    value,
			Label:  webi18n.T(opts.Loc, webi18n.LanguageLabelKey(tag)),
			URL:    routepath.WithLanguage(opts.CurrentPath, opts.CurrentQuery, value),
			Active: value == opts.Lang,
		})
	}
	return options
}
