// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	Login            = "/login"
	Health           = "/up"
	StaticPrefix     = "/static/"
	Main             = "/main"
	Courses          = "/courses"
	Profile          = "/profile"
	ProfilePrefix    = "/profile/"
	ProfileView      = "/profile/view"
	ProfileInterests = "/profile/interests"
	ProfileRest      = ProfilePrefix + "{rest...}"
)

// ProfileTabQueryKey selects the initially open profile tab.
const ProfileTabQueryKey = "tab"

// ProfileViewWithTab returns the settled profile view route for tab.
func ProfileViewWithTab(tab string) string {
	return withQuery(ProfileView, ProfileTabQueryKey, tab)
}

// ProfileWithTab returns the profile page route for tab.
func ProfileWithTab(tab string) string {
	return withQuery(Profile, ProfileTabQueryKey, tab)
}

// WithLanguage returns path with the language query parameter set, keeping
// the rest of rawQuery.
func WithLanguage(path, rawQuery, lang string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set("lang", strings.TrimSpace(lang))
	return path + "?" + values.Encode()
}

func withQuery(path, key, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: {value}}.Encode()
}
