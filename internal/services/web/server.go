package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vinylcourses/coursehub/internal/platform/logging"
	"github.com/vinylcourses/coursehub/internal/platform/timeouts"
	"github.com/vinylcourses/coursehub/internal/services/web/app"
	"github.com/vinylcourses/coursehub/internal/services/web/infra/interestsapi"
	module "github.com/vinylcourses/coursehub/internal/services/web/module"
	"github.com/vinylcourses/coursehub/internal/services/web/modules"
	"github.com/vinylcourses/coursehub/internal/services/web/modules/profile"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/httpx"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/observability"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/requestmeta"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/weberror"
	"github.com/vinylcourses/coursehub/internal/services/web/routepath"
	"github.com/vinylcourses/coursehub/internal/services/web/session"
	"github.com/vinylcourses/coursehub/internal/services/web/static"
	"github.com/vinylcourses/coursehub/internal/services/web/storage/sqlite"
)

// DefaultCatalogTTL is how long a cached interest catalog is served.
const DefaultCatalogTTL = 5 * time.Minute

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	// SessionKey verifies the session-record cookie left by the login flow.
	SessionKey string
	// CachePath enables the SQLite catalog cache when set.
	CachePath         string
	CatalogTTL        time.Duration
	CategoryOrderFile string
	// TrustForwardedProto honors X-Forwarded-Proto behind a TLS proxy.
	TrustForwardedProto bool
	Logger              logrus.FieldLogger
}

// Dependencies are the collaborators composed by NewHandler.
type Dependencies struct {
	Interests     profile.InterestsClient
	CatalogCache  profile.CatalogCacheStore
	SessionCodec  *session.Codec
	CategoryOrder profile.CategoryOrder
	SaveThrottle  *profile.SaveThrottle
}

// NewHandler builds the root handler: static assets, the health probe and
// the profile module behind the request middleware chain.
func NewHandler(cfg Config, deps Dependencies) (http.Handler, error) {
	logger := logging.OrDiscard(cfg.Logger)
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	if deps.SaveThrottle == nil {
		deps.SaveThrottle = profile.NewDefaultSaveThrottle()
	}

	var gateway profile.InterestsGateway
	if deps.Interests != nil {
		gateway = profile.NewAPIGateway(deps.Interests)
		if deps.CatalogCache != nil {
			ttl := cfg.CatalogTTL
			if ttl <= 0 {
				ttl = DefaultCatalogTTL
			}
			gateway = profile.NewCachingGateway(gateway, deps.CatalogCache, ttl, logger)
		}
	}

	resolver := session.NewResolver(deps.SessionCodec, logger)
	mods := modules.DefaultModules(modules.Dependencies{
		Interests: gateway,
		Profile: profile.Options{
			ResolveSession:      resolver.Resolve,
			CategoryOrder:       deps.CategoryOrder,
			SaveThrottle:        deps.SaveThrottle,
			RequestSchemePolicy: policy,
			Logger:              logger,
		},
	})

	root := http.NewServeMux()
	root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	root.HandleFunc("GET "+routepath.Health, healthHandler(mods))
	root.HandleFunc("GET "+routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Profile, http.StatusSeeOther)
	})
	root.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusNotFound)
	})

	handler, err := app.Compose(root, app.ComposeInput{
		Modules:             mods,
		RequestSchemePolicy: policy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	handler = httpx.Chain(handler,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	)
	return otelhttp.NewHandler(handler, "web"), nil
}

// healthHandler answers 200 while every reporting module is operational.
func healthHandler(modules []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		for _, m := range modules {
			reporter, ok := m.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				_ = httpx.WriteHTML(w, http.StatusServiceUnavailable, "degraded: "+m.ID())
				return
			}
		}
		_ = httpx.WriteHTML(w, http.StatusOK, "ok")
	}
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	cache      *sqlite.Store
	logger     logrus.FieldLogger
}

// NewServer builds a configured web server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := logging.OrDiscard(cfg.Logger)
	cfg.Logger = logger

	codec, err := session.NewCodec([]byte(strings.TrimSpace(cfg.SessionKey)))
	if err != nil {
		return nil, fmt.Errorf("session codec: %w", err)
	}
	client, err := interestsapi.NewClient(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("interests api client: %w", err)
	}
	order, err := profile.LoadCategoryOrder(cfg.CategoryOrderFile)
	if err != nil {
		return nil, err
	}

	deps := Dependencies{
		Interests:     client,
		SessionCodec:  codec,
		CategoryOrder: order,
	}
	var cache *sqlite.Store
	if path := strings.TrimSpace(cfg.CachePath); path != "" {
		cache, err = sqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("open catalog cache: %w", err)
		}
		if removed, err := cache.DeleteExpired(ctx, time.Now()); err != nil {
			logger.WithError(err).Warn("prune catalog cache")
		} else if removed > 0 {
			logger.WithField("removed", removed).Info("pruned expired catalog cache entries")
		}
		deps.CatalogCache = cache
	}

	handler, err := NewHandler(cfg, deps)
	if err != nil {
		if cache != nil {
			_ = cache.Close()
		}
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		cache:  cache,
		logger: logger,
	}, nil
}

// ListenAndServe serves HTTP until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.WithField("addr", s.httpAddr).Info("web listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the catalog cache.
func (s *Server) Close() {
	if s == nil || s.cache == nil {
		return
	}
	if err := s.cache.Close(); err != nil {
		s.logger.WithError(err).Warn("close catalog cache")
	}
}
