package profile

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"

	module "github.com/vinylcourses/coursehub/internal/services/web/module"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/flash"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/httpx"
	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/pagerender"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/requestmeta"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/weberror"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
	"github.com/vinylcourses/coursehub/internal/services/web/session"
)

type handlers struct {
	service        service
	resolveSession module.ResolveSession
	policy         requestmeta.SchemePolicy
	logger         logrus.FieldLogger
}

func newHandlers(s service, resolveSession module.ResolveSession, policy requestmeta.SchemePolicy, logger logrus.FieldLogger) handlers {
	if resolveSession == nil {
		resolveSession = func(*http.Request) session.Session { return session.Anonymous() }
	}
	return handlers{service: s, resolveSession: resolveSession, policy: policy, logger: logger}
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	tab := ParseTab(r.URL.Query().Get(routepath.ProfileTabQueryKey))
	h.writePage(w, r, loc, lang, LoadingView(tab, loc))
}

func (h handlers) handleView(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	tab := ParseTab(r.URL.Query().Get(routepath.ProfileTabQueryKey))
	page := h.service.newPage(r, h.resolveSession(r), tab)
	defer page.Close()

	if !h.load(r, page) {
		return
	}
	if notice, ok := flash.ReadAndClear(w, r, h.policy); ok {
		page.SetMessage(messageFromNotice(notice))
	}
	h.writePage(w, r, loc, lang, PageView(page.View(), loc))
}

func (h handlers) handleSaveInterests(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, err)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	page := h.service.newPage(r, h.resolveSession(r), TabInterests)
	defer page.Close()

	if !h.load(r, page) {
		return
	}
	ids, err := parseInterestIDs(r.PostForm[interestFormField])
	if err != nil {
		h.logger.WithError(err).Warn("reject interests form")
		page.SetMessage(errorMessage(webi18n.KeyInterestsInvalidSelection))
		h.writePage(w, r, loc, lang, PageView(page.View(), loc))
		return
	}
	for _, id := range page.Selection().TogglesTo(ids) {
		page.Toggle(id)
	}

	if page.Save(r.Context()) && !httpx.IsHTMXRequest(r) {
		flash.Write(w, r, flash.NoticeSuccess(webi18n.KeyInterestsSaved), h.policy)
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	h.writePage(w, r, loc, lang, PageView(page.View(), loc))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// load runs the page fetches and reports whether a response should follow.
func (h handlers) load(r *http.Request, page *Page) bool {
	if err := page.Load(r.Context()); err != nil {
		if errors.Is(err, ErrPageInactive) {
			h.logger.WithField("path", r.URL.Path).Debug("request ended before profile load settled")
		}
		return false
	}
	return true
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, body templ.Component) {
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		TitleKey: webi18n.KeyProfileTitle,
		Fragment: body,
		Loc:      loc,
		Lang:     lang,
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WithError(err).WithField("path", r.URL.Path).Error("profile request failed")
	weberror.WriteModuleError(w, r, err)
}

func messageFromNotice(notice flash.Notice) Message {
	if notice.Kind == flash.KindError {
		return Message{Kind: MessageError, Key: notice.Key}
	}
	return Message{Kind: MessageSuccess, Key: notice.Key}
}
