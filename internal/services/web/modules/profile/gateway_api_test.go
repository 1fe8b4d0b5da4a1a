package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinylcourses/coursehub/internal/services/web/infra/interestsapi"
	apperrors "github.com/vinylcourses/coursehub/internal/services/web/platform/errors"
)

type interestsClientStub struct {
	interests []interestsapi.Interest
	ids       []int64
	save      interestsapi.SaveResult
	err       error

	savedUser int64
	savedIDs  []int64
}

func (s *interestsClientStub) ListInterests(context.Context) ([]interestsapi.Interest, error) {
	return s.interests, s.err
}

func (s *interestsClientStub) ListUserInterestIDs(context.Context, int64) ([]int64, error) {
	return s.ids, s.err
}

func (s *interestsClientStub) SaveUserInterests(_ context.Context, userID int64, ids []int64) (interestsapi.SaveResult, error) {
	s.savedUser = userID
	s.savedIDs = ids
	return s.save, s.err
}

func TestAPIGatewayMapsClientTypes(t *testing.T) {
	t.Parallel()

	client := &interestsClientStub{
		interests: []interestsapi.Interest{{ID: 10, Name: "Rock", Category: "music"}},
		ids:       []int64{10},
		save:      interestsapi.SaveResult{Success: false, Message: "limit reached"},
	}
	gateway := NewAPIGateway(client)

	interests, err := gateway.ListInterests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Interest{{ID: 10, Name: "Rock", Category: "music"}}, interests)

	ids, err := gateway.ListUserInterestIDs(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, ids)

	result, err := gateway.SaveUserInterests(context.Background(), 5, []int64{10, 11})
	require.NoError(t, err)
	assert.Equal(t, SaveResult{Success: false, Message: "limit reached"}, result)
	assert.Equal(t, int64(5), client.savedUser)
	assert.Equal(t, []int64{10, 11}, client.savedIDs)
}

func TestAPIGatewayPropagatesClientErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	gateway := NewAPIGateway(&interestsClientStub{err: boom})

	_, err := gateway.ListInterests(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = gateway.SaveUserInterests(context.Background(), 1, nil)
	assert.ErrorIs(t, err, boom)
}

func TestNilClientGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	gateway := NewAPIGateway(nil)
	_, err := gateway.ListInterests(context.Background())
	assert.Equal(t, apperrors.KindUnavailable, apperrors.KindOf(err))
	_, err = gateway.ListUserInterestIDs(context.Background(), 1)
	assert.Equal(t, apperrors.KindUnavailable, apperrors.KindOf(err))
	_, err = gateway.SaveUserInterests(context.Background(), 1, []int64{1})
	assert.Equal(t, apperrors.KindUnavailable, apperrors.KindOf(err))
}
