package profile

import (
	"context"

	"github.com/vinylcourses/coursehub/internal/services/web/infra/interestsapi"
	apperrors "github.com/vinylcourses/coursehub/internal/services/web/platform/errors"
)

// InterestsClient exposes the interests API operations needed by the profile module.
type InterestsClient interface {
	ListInterests(ctx context.Context) ([]interestsapi.Interest, error)
	ListUserInterestIDs(ctx context.Context, userID int64) ([]int64, error)
	SaveUserInterests(ctx context.Context, userID int64, ids []int64) (interestsapi.SaveResult, error)
}

// NewAPIGateway builds an InterestsGateway backed by the interests API client.
func NewAPIGateway(client InterestsClient) InterestsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client InterestsClient
}

func (g apiGateway) ListInterests(ctx context.Context) ([]Interest, error) {
	if g.client == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "interests api client is not configured")
	}
	items, err := g.client.ListInterests(ctx)
	if err != nil {
		return nil, err
	}
	interests := make([]Interest, 0, len(items))
	for _, item := range items {
		interests = append(interests, Interest{ID: item.ID, Name: item.Name, Category: item.Category})
	}
	return interests, nil
}

func (g apiGateway) ListUserInterestIDs(ctx context.Context, userID int64) ([]int64, error) {
	if g.client == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "interests api client is not configured")
	}
	return g.client.ListUserInterestIDs(ctx, userID)
}

func (g apiGateway) SaveUserInterests(ctx context.Context, userID int64, ids []int64) (SaveResult, error) {
	if g.client == nil {
		return SaveResult{}, apperrors.E(apperrors.KindUnavailable, "interests api client is not configured")
	}
	result, err := g.client.SaveUserInterests(ctx, userID, ids)
	if err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Success: result.Success, Message: result.Message}, nil
}
