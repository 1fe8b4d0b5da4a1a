package profile

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
	webtemplates "github.com/vinylcourses/coursehub/internal/services/web/templates"
)

const (
	viewElementID     = "profile-view"
	interestFormField = "interest_id"
)

// PageView renders the profile view for its current state.
func PageView(view View, loc webi18n.Localizer) templ.Component {
	switch view.State {
	case StateLoading:
		return LoadingView(view.Tab, loc)
	case StateUnauthenticated:
		return unauthenticatedView(view, loc)
	default:
		return authenticatedView(view, loc)
	}
}

// LoadingView renders the spinner that lazy-loads the settled view.
func LoadingView(tab Tab, loc webi18n.Localizer) templ.Component {
	viewURL := routepath.ProfileViewWithTab(string(ParseTab(string(tab))))
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := webtemplates.NewHTMLWriter(w)
		h.Raw("<div")
		h.Attr("id", viewElementID)
		h.Class("loading-container")
		h.Attr("data-profile-state", StateLoading.String())
		h.Attr("hx-get", viewURL)
		h.Attr("hx-trigger", "load")
		h.Attr("hx-swap", "outerHTML")
		h.Raw(`><div class="loading-spinner"></div><p>`)
		h.Text(webi18n.T(loc, webi18n.KeyProfileLoading))
		h.Raw("</p><noscript><a")
		h.Attr("href", viewURL)
		h.Raw(">")
		h.Text(webi18n.T(loc, webi18n.KeyProfileLoadNoScript))
		h.Raw("</a></noscript></div>")
		return h.Err()
	})
}

func unauthenticatedView(view View, loc webi18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := webtemplates.NewHTMLWriter(w)
		h.Raw("<div")
		h.Attr("id", viewElementID)
		h.Class("error-container")
		h.Attr("data-profile-state", StateUnauthenticated.String())
		h.Raw(">")
		writeMessage(h, view.Message, loc)
		h.Raw("<p>")
		h.Text(webi18n.T(loc, webi18n.KeyProfileLoginRequired))
		h.Raw(`</p><a class="btn-primary"`)
		h.Attr("href", routepath.Login)
		h.Raw(">")
		h.Text(webi18n.T(loc, webi18n.KeyProfileGoToLogin))
		h.Raw("</a></div>")
		return h.Err()
	})
}

func authenticatedView(view View, loc webi18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := webtemplates.NewHTMLWriter(w)
		h.Raw("<div")
		h.Attr("id", viewElementID)
		h.Attr("data-profile-state", StateAuthenticated.String())
		h.Attr("data-profile-tab", string(view.Tab))
		h.Raw(`><section class="courses-header"><div class="courses-header-content"><h1 class="courses-title">`)
		h.Text(webi18n.T(loc, webi18n.KeyProfileTitle))
		h.Raw(`</h1><p class="courses-subtitle">`)
		h.Text(webi18n.T(loc, webi18n.KeyProfileSubtitle))
		h.Raw(`</p></div></section><section class="profile-section"><div class="profile-container">`)

		writeTabSelector(h, view.Tab, loc)
		h.Raw(`<div class="profile-panels">`)
		writeInterestsPanel(h, view, loc)
		writeAccountPanel(h, view, loc)
		h.Raw(`</div></div></section></div>`)
		return h.Err()
	})
}

func writeTabSelector(h *webtemplates.HTMLWriter, active Tab, loc webi18n.Localizer) {
	tabs := []struct {
		tab      Tab
		labelKey string
	}{
		{tab: TabInterests, labelKey: webi18n.KeyProfileTabInterests},
		{tab: TabAccountInfo, labelKey: webi18n.KeyProfileTabAccount},
	}
	for _, item := range tabs {
		inputID := "profile-tab-" + string(item.tab)
		h.Raw(`<input type="radio" name="profile-tab" class="profile-tab-input"`)
		h.Attr("id", inputID)
		h.Attr("value", string(item.tab))
		h.BoolAttr("checked", item.tab == active)
		h.Raw("><label")
		h.Attr("for", inputID)
		if item.tab == active {
			h.Class("profile-tab", "active")
		} else {
			h.Class("profile-tab")
		}
		h.Attr("data-profile-tab-label", string(item.tab))
		h.Raw(">")
		h.Text(webi18n.T(loc, item.labelKey))
		h.Raw("</label>")
	}
}

func writeInterestsPanel(h *webtemplates.HTMLWriter, view View, loc webi18n.Localizer) {
	h.Raw(`<div class="profile-content"`)
	h.Attr("data-profile-panel", string(TabInterests))
	h.Raw("><h2>")
	h.Text(webi18n.T(loc, webi18n.KeyInterestsHeading))
	h.Raw(`</h2><p class="profile-hint">`)
	h.Text(webi18n.T(loc, webi18n.KeyInterestsSubtitle))
	h.Raw("</p>")
	if view.CatalogDegraded {
		writeDegraded(h, "catalog", webi18n.T(loc, webi18n.KeyDegradedCatalog))
	}
	if view.SelectionDegraded {
		writeDegraded(h, "selection", webi18n.T(loc, webi18n.KeyDegradedSelection))
	}

	h.Raw(`<form id="profile-interests-form" method="post"`)
	h.Attr("action", routepath.ProfileInterests)
	h.Attr("hx-post", routepath.ProfileInterests)
	h.Attr("hx-target", "#"+viewElementID)
	h.Attr("hx-swap", "outerHTML")
	h.Attr("hx-disabled-elt", "find button[type='submit']")
	h.Raw(">")
	if view.Catalog.Empty() && !view.CatalogDegraded {
		h.Raw(`<p class="empty-state">`)
		h.Text(webi18n.T(loc, webi18n.KeyInterestsEmpty))
		h.Raw("</p>")
	}
	for _, category := range view.Catalog.Categories {
		h.Raw(`<div class="interest-category"`)
		h.Attr("data-category", category.Name)
		h.Raw(`><h3 class="interest-category-title">`)
		h.Text(category.Title)
		h.Raw(`</h3><div class="interests-grid">`)
		for _, interest := range category.Interests {
			id := strconv.FormatInt(interest.ID, 10)
			selected := view.Selection.Contains(interest.ID)
			h.Raw("<label")
			if selected {
				h.Class("interest-tag", "selected")
			} else {
				h.Class("interest-tag")
			}
			h.Attr("data-interest-id", id)
			h.Raw(`><input type="checkbox"`)
			h.Attr("name", interestFormField)
			h.Attr("value", id)
			h.BoolAttr("checked", selected)
			h.Raw("><span>")
			h.Text(interest.Name)
			h.Raw("</span></label>")
		}
		h.Raw("</div></div>")
	}
	h.Raw(`<div class="profile-actions"><button type="submit" class="btn-primary"`)
	h.BoolAttr("disabled", view.Saving)
	h.Raw(">")
	if view.Saving {
		h.Text(webi18n.T(loc, webi18n.KeyInterestsSaving))
	} else {
		h.Text(webi18n.T(loc, webi18n.KeyInterestsSave))
	}
	h.Raw("</button>")
	writeMessage(h, view.Message, loc)
	h.Raw("</div></form></div>")
}

func writeAccountPanel(h *webtemplates.HTMLWriter, view View, loc webi18n.Localizer) {
	h.Raw(`<div class="profile-content"`)
	h.Attr("data-profile-panel", string(TabAccountInfo))
	h.Raw("><h2>")
	h.Text(webi18n.T(loc, webi18n.KeyAccountHeading))
	h.Raw(`</h2><dl class="profile-info">`)
	writeInfoItem(h, "username", webi18n.T(loc, webi18n.KeyAccountUsername), view.User.Username)
	if view.User.HasEmail() {
		writeInfoItem(h, "email", webi18n.T(loc, webi18n.KeyAccountEmail), view.User.Email)
	}
	writeInfoItem(h, "role", webi18n.T(loc, webi18n.KeyAccountRole), view.User.Role)
	h.Raw("</dl></div>")
}

func writeInfoItem(h *webtemplates.HTMLWriter, field, label, value string) {
	h.Raw(`<div class="info-item"><dt>`)
	h.Text(label)
	h.Raw("</dt><dd")
	h.Attr("data-account-field", field)
	h.Raw(">")
	h.Text(value)
	h.Raw("</dd></div>")
}

func writeDegraded(h *webtemplates.HTMLWriter, source, text string) {
	h.Raw(`<div class="degraded-notice" role="alert"`)
	h.Attr("data-profile-degraded", source)
	h.Raw(">")
	h.Text(text)
	h.Raw("</div>")
}

func writeMessage(h *webtemplates.HTMLWriter, message Message, loc webi18n.Localizer) {
	if message.Empty() {
		return
	}
	kind := MessageSuccess
	if message.IsError() {
		kind = MessageError
	}
	h.Raw(`<div class="profile-message" role="status"`)
	h.Attr("data-message-kind", string(kind))
	h.Raw(">")
	h.Text(message.Localized(loc))
	h.Raw("</div>")
}
