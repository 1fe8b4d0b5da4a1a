package profile

import (
	"context"

	apperrors "github.com/vinylcourses/coursehub/internal/services/web/platform/errors"
)

// SaveResult is the interests API reply to a selection replace.
type SaveResult struct {
	Success bool
	Message string
}

// InterestsGateway loads and saves interest data for the profile module.
type InterestsGateway interface {
	ListInterests(ctx context.Context) ([]Interest, error)
	ListUserInterestIDs(ctx context.Context, userID int64) ([]int64, error)
	SaveUserInterests(ctx context.Context, userID int64, ids []int64) (SaveResult, error)
}

type unavailableGateway struct{}

func (unavailableGateway) ListInterests(context.Context) ([]Interest, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "interests api is not configured")
}

func (unavailableGateway) ListUserInterestIDs(context.Context, int64) ([]int64, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "interests api is not configured")
}

func (unavailableGateway) SaveUserInterests(context.Context, int64, []int64) (SaveResult, error) {
	return SaveResult{}, apperrors.E(apperrors.KindUnavailable, "interests api is not configured")
}
