package profile

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vinylcourses/coursehub/internal/platform/logging"
	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
	"github.com/vinylcourses/coursehub/internal/services/web/session"
)

// ErrPageInactive reports that fetch results arrived after the page stopped
// accepting them.
var ErrPageInactive = errors.New("profile page is no longer active")

// State is the top-level view state.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

// String returns the data attribute value for s.
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "loading"
	}
}

// Tab is an authenticated sub-view.
type Tab string

const (
	TabInterests   Tab = "interests"
	TabAccountInfo Tab = "info"
)

// ParseTab maps a query value to a tab, defaulting to TabInterests.
func ParseTab(raw string) Tab {
	if Tab(strings.ToLower(strings.TrimSpace(raw))) == TabAccountInfo {
		return TabAccountInfo
	}
	return TabInterests
}

// FetchResult records how one fetch settled.
type FetchResult struct {
	Attempted bool
	Err       error
}

// Failed reports whether the fetch ran and failed.
func (r FetchResult) Failed() bool {
	return r.Attempted && r.Err != nil
}

// MessageKind classifies the save message box.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is the save feedback shown under the save button. Text, when set,
// is shown verbatim; otherwise Key is localized.
type Message struct {
	Kind MessageKind
	Key  string
	Text string
}

// Empty reports whether there is nothing to show.
func (m Message) Empty() bool {
	return m.Key == "" && m.Text == ""
}

// IsError reports whether the message is an error.
func (m Message) IsError() bool {
	return m.Kind == MessageError
}

// Localized returns the display text.
func (m Message) Localized(loc webi18n.Localizer) string {
	if m.Text != "" {
		return m.Text
	}
	return webi18n.T(loc, m.Key)
}

func errorMessage(key string) Message {
	return Message{Kind: MessageError, Key: key}
}

// Page is the profile page component model: the session gate, both fetches,
// the selection toggler, the save submitter and the view state.
type Page struct {
	gateway  InterestsGateway
	session  session.Session
	order    CategoryOrder
	throttle *SaveThrottle
	logger   logrus.FieldLogger

	closed atomic.Bool

	loading         bool
	tab             Tab
	catalog         Catalog
	catalogResult   FetchResult
	selection       Selection
	selectionResult FetchResult
	saving          bool
	message         Message
}

// PageOption customizes a Page.
type PageOption func(*Page)

// WithCategoryOrder sets the category display order.
func WithCategoryOrder(order CategoryOrder) PageOption {
	return func(p *Page) { p.order = order }
}

// WithSaveThrottle limits saves per user.
func WithSaveThrottle(throttle *SaveThrottle) PageOption {
	return func(p *Page) { p.throttle = throttle }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger logrus.FieldLogger) PageOption {
	return func(p *Page) { p.logger = logging.OrDiscard(logger) }
}

// WithTab sets the initially active tab.
func WithTab(tab Tab) PageOption {
	return func(p *Page) { p.tab = ParseTab(string(tab)) }
}

// NewPage builds a page in the loading state for sess.
func NewPage(gateway InterestsGateway, sess session.Session, opts ...PageOption) *Page {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	p := &Page{
		gateway: gateway,
		session: sess,
		logger:  logging.Discard(),
		loading: true,
		tab:     TabInterests,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Close stops the page from applying any further async results.
func (p *Page) Close() {
	p.closed.Store(true)
}

func (p *Page) active(ctx context.Context) bool {
	if p.closed.Load() {
		return false
	}
	return ctx == nil || ctx.Err() == nil
}

// Load runs the catalog fetch and, for a present session, the user-interest
// fetch concurrently. Fetch failures are logged and recorded; they never fail
// Load. Results arriving after ctx is done or Close was called are dropped and
// ErrPageInactive is returned.
func (p *Page) Load(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !p.active(ctx) {
		return ErrPageInactive
	}
	user, hasUser := p.session.User()

	var (
		interests  []Interest
		catalogErr error
		ids        []int64
		idsErr     error
		group      errgroup.Group
	)
	group.Go(func() error {
		interests, catalogErr = p.gateway.ListInterests(ctx)
		return nil
	})
	if hasUser {
		group.Go(func() error {
			ids, idsErr = p.gateway.ListUserInterestIDs(ctx, user.ID)
			return nil
		})
	}
	_ = group.Wait()

	if !p.active(ctx) {
		return ErrPageInactive
	}

	p.catalogResult = FetchResult{Attempted: true, Err: catalogErr}
	if catalogErr != nil {
		p.logger.WithError(catalogErr).Error("fetch interests catalog")
		p.catalog = Catalog{}
	} else {
		p.catalog = GroupCatalog(interests, p.order)
	}
	p.loading = false

	if hasUser {
		p.selectionResult = FetchResult{Attempted: true, Err: idsErr}
		if idsErr != nil {
			p.logger.WithError(idsErr).WithField("user_id", user.ID).Error("fetch user interests")
		} else {
			p.selection = NewSelection(ids...)
		}
	}
	return nil
}

// Toggle flips id in the selection.
func (p *Page) Toggle(id int64) {
	p.selection.Toggle(id)
}

// SelectTab switches the active authenticated tab. No data is reloaded.
func (p *Page) SelectTab(tab Tab) {
	p.tab = ParseTab(string(tab))
}

// SetMessage replaces the save message box content.
func (p *Page) SetMessage(message Message) {
	p.message = message
}

// Save submits the whole selection for the session user and records the
// outcome in the message box. It reports whether the server confirmed it.
func (p *Page) Save(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	user, ok := p.session.User()
	if !ok {
		p.message = errorMessage(webi18n.KeyInterestsLoginFirst)
		return false
	}
	if !p.throttle.Allow(user.ID) {
		p.message = errorMessage(webi18n.KeyInterestsThrottled)
		return false
	}

	p.saving = true
	p.message = Message{}
	defer func() { p.saving = false }()

	result, err := p.gateway.SaveUserInterests(ctx, user.ID, p.selection.IDs())
	if !p.active(ctx) {
		return false
	}
	switch {
	case err != nil:
		p.logger.WithError(err).WithField("user_id", user.ID).Error("save user interests")
		p.message = errorMessage(webi18n.KeyInterestsSaveError)
		return false
	case !result.Success:
		message := errorMessage(webi18n.KeyInterestsSaveFailed)
		if text := strings.TrimSpace(result.Message); text != "" {
			message.Text = text
		}
		p.message = message
		return false
	default:
		p.message = Message{Kind: MessageSuccess, Key: webi18n.KeyInterestsSaved}
		return true
	}
}

// View is a snapshot of everything the renderer needs.
type View struct {
	State             State
	Tab               Tab
	User              session.Record
	Catalog           Catalog
	Selection         Selection
	Saving            bool
	Message           Message
	CatalogDegraded   bool
	SelectionDegraded bool
}

// State returns the current top-level view state.
func (p *Page) State() State {
	if p.loading {
		return StateLoading
	}
	if _, ok := p.session.User(); ok {
		return StateAuthenticated
	}
	return StateUnauthenticated
}

// Saving reports whether a save is in flight.
func (p *Page) Saving() bool {
	return p.saving
}

// Selection returns a copy of the current selection.
func (p *Page) Selection() Selection {
	return NewSelection(p.selection.ids...)
}

// View returns the render snapshot.
func (p *Page) View() View {
	user, _ := p.session.User()
	return View{
		State:             p.State(),
		Tab:               p.tab,
		User:              user,
		Catalog:           p.catalog,
		Selection:         p.Selection(),
		Saving:            p.saving,
		Message:           p.message,
		CatalogDegraded:   p.catalogResult.Failed(),
		SelectionDegraded: p.selectionResult.Failed(),
	}
}
