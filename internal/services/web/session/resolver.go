package session

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vinylcourses/coursehub/internal/platform/logging"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/httpx"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/sessioncookie"
)

// Resolver turns the session-record cookie into a Session.
type Resolver struct {
	codec  *Codec
	logger logrus.FieldLogger
}

// NewResolver builds a resolver. A nil codec resolves every request as absent.
func NewResolver(codec *Codec, logger logrus.FieldLogger) Resolver {
	return Resolver{codec: codec, logger: logging.OrDiscard(logger)}
}

// Resolve reads the request's session record. Malformed records are logged
// and reported as StatusMalformed; callers treat them as unauthenticated.
func (r Resolver) Resolve(req *http.Request) Session {
	token, ok := sessioncookie.Read(req)
	if !ok || r.codec == nil {
		return Anonymous()
	}
	record, err := r.codec.Decode(token)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"path":       req.URL.Path,
			"request_id": req.Header.Get(httpx.RequestIDHeader),
		}).WithError(err).Warn("ignoring malformed session record")
		return Session{Status: StatusMalformed, Err: err}
	}
	return Authenticated(record)
}
