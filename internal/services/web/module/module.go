// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/vinylcourses/coursehub/internal/services/web/session"
)

// ResolveSession resolves the session context for a request.
type ResolveSession func(*http.Request) session.Session

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with gateway dependencies implement this
// so the registry can derive service health without centralizing client knowledge.
type HealthReporter interface {
	Healthy() bool
}
