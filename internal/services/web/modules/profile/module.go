package profile

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vinylcourses/coursehub/internal/platform/logging"
	module "github.com/vinylcourses/coursehub/internal/services/web/module"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/requestmeta"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
)

// Options carries the profile module's request-scoped and shared dependencies.
type Options struct {
	ResolveSession      module.ResolveSession
	CategoryOrder       CategoryOrder
	SaveThrottle        *SaveThrottle
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              logrus.FieldLogger
}

// Module provides the profile and interests routes.
type Module struct {
	gateway InterestsGateway
	opts    Options
}

// New returns a profile module backed by the interests API client.
func New(client InterestsClient, opts Options) Module {
	return NewWithGateway(NewAPIGateway(client), opts)
}

// NewWithGateway returns a profile module with an explicit gateway.
func NewWithGateway(gateway InterestsGateway, opts Options) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	opts.Logger = logging.OrDiscard(opts.Logger)
	return Module{gateway: gateway, opts: opts}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Healthy reports whether the profile module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.opts.CategoryOrder, m.opts.SaveThrottle, m.opts.Logger)
	h := newHandlers(svc, m.opts.ResolveSession, m.opts.RequestSchemePolicy, m.opts.Logger)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProfilePrefix, Handler: mux}, nil
}
