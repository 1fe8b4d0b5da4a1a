package profile

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "github.com/vinylcourses/coursehub/internal/services/web/platform/errors"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/httpx"
	"github.com/vinylcourses/coursehub/internal/services/web/session"
)

// maxSubmittedInterests bounds the interest ids accepted from one form post.
const maxSubmittedInterests = 500

type service struct {
	gateway  InterestsGateway
	order    CategoryOrder
	throttle *SaveThrottle
	logger   logrus.FieldLogger
}

func newService(gateway InterestsGateway, order CategoryOrder, throttle *SaveThrottle, logger logrus.FieldLogger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, order: order, throttle: throttle, logger: logger}
}

func (s service) newPage(r *http.Request, sess session.Session, tab Tab) *Page {
	logger := s.logger.WithFields(logrus.Fields{
		"request_id": r.Header.Get(httpx.RequestIDHeader),
		"session":    sess.Status.String(),
	})
	return NewPage(s.gateway, sess,
		WithCategoryOrder(s.order),
		WithSaveThrottle(s.throttle),
		WithLogger(logger),
		WithTab(tab),
	)
}

// parseInterestIDs reads submitted interest ids, keeping first occurrences.
func parseInterestIDs(values []string) ([]int64, error) {
	if len(values) > maxSubmittedInterests {
		return nil, apperrors.E(apperrors.KindInvalidInput, "too many interests submitted")
	}
	ids := make([]int64, 0, len(values))
	for _, raw := range values {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || id <= 0 {
			return nil, apperrors.E(apperrors.KindInvalidInput, "invalid interest id "+strconv.Quote(raw))
		}
		ids = append(ids, id)
	}
	return NewSelection(ids...).IDs(), nil
}
