package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
)

// AppErrorTitleKey returns the localization key for an error page heading.
func AppErrorTitleKey(statusCode int) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return webi18n.KeyErrorNotFound
	case http.StatusServiceUnavailable:
		return webi18n.KeyErrorUnavailable
	default:
		return webi18n.KeyErrorInternal
	}
}

// AppErrorState renders the error body for app pages.
func AppErrorState(statusCode int, loc webi18n.Localizer) templ.Component {
	statusCode = normalizeAppErrorStatus(statusCode)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		h.Raw(`<div id="app-error-state" class="error-container"`)
		h.Attr("data-status", strconv.Itoa(statusCode))
		h.Raw("><p>")
		h.Text(webi18n.T(loc, AppErrorTitleKey(statusCode)))
		h.Raw(`</p><a class="btn-primary"`)
		h.Attr("href", routepath.Main)
		h.Raw(">")
		h.Text(webi18n.T(loc, webi18n.KeyNavHome))
		h.Raw("</a></div>")
		return h.Err()
	})
}

func normalizeAppErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}
