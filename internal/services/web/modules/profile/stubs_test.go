package profile

import (
	"context"
	"sync"
)

type gatewayStub struct {
	mu sync.Mutex

	interests []Interest
	listErr   error
	userIDs   []int64
	userErr   error
	saveResp  SaveResult
	saveErr   error

	listCalls   int
	userCalls   []int64
	saveCalls   [][]int64
	saveUserIDs []int64

	beforeListReturn func()
	onSave           func()
}

func (g *gatewayStub) ListInterests(context.Context) ([]Interest, error) {
	g.mu.Lock()
	g.listCalls++
	hook := g.beforeListReturn
	g.mu.Unlock()
	if hook != nil {
		hook()
	}
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]Interest, len(g.interests))
	copy(out, g.interests)
	return out, nil
}

func (g *gatewayStub) ListUserInterestIDs(_ context.Context, userID int64) ([]int64, error) {
	g.mu.Lock()
	g.userCalls = append(g.userCalls, userID)
	g.mu.Unlock()
	if g.userErr != nil {
		return nil, g.userErr
	}
	out := make([]int64, len(g.userIDs))
	copy(out, g.userIDs)
	return out, nil
}

func (g *gatewayStub) SaveUserInterests(_ context.Context, userID int64, ids []int64) (SaveResult, error) {
	g.mu.Lock()
	g.saveCalls = append(g.saveCalls, append([]int64(nil), ids...))
	g.saveUserIDs = append(g.saveUserIDs, userID)
	hook := g.onSave
	g.mu.Unlock()
	if hook != nil {
		hook()
	}
	if g.saveErr != nil {
		return SaveResult{}, g.saveErr
	}
	return g.saveResp, nil
}

func (g *gatewayStub) saves() [][]int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([][]int64(nil), g.saveCalls...)
}

func (g *gatewayStub) userFetches() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]int64(nil), g.userCalls...)
}
