// Package i18n resolves the request language and prints localized page copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "coursehub_lang"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Match returns the supported tag closest to value, or false when value does
// not parse.
func Match(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx], true
}

// ResolveTag determines the best language tag for the request: query
// parameter, then cookie, then Accept-Language. The bool reports whether the
// query parameter chose the tag and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if r.URL != nil {
		if tag, ok := Match(r.URL.Query().Get(LangParam)); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Match(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, _ := matcher.Match(tags...)
			return supported[idx], false
		}
	}
	return Default(), false
}

// ResolveLocalizer returns a printer for the request language and the tag
// string, persisting an explicit ?lang= choice as a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	tag, persist := ResolveTag(r)
	if persist && w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     LangCookieName,
			Value:    tag.String(),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
	}
	return message.NewPrinter(tag), tag.String()
}

// T returns a translated string, or the key itself without a localizer.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		if len(args) > 0 {
			return message.NewPrinter(Default()).Sprintf(key, args...)
		}
		return key
	}
	return loc.Sprintf(key, args...)
}

// LanguageLabelKey returns the message key naming tag in the language switch.
func LanguageLabelKey(tag language.Tag) string {
	return "language." + tag.String()
}
