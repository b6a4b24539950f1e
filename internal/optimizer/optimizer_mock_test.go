package optimizer

import (
	"context"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
)

type mockUploader struct {
	calls    int
	lastReq  *model.OptimizationRequest
	uploadFn func(ctx context.Context, req *model.OptimizationRequest) (*model.OptimizationResult, error)
}

func (m *mockUploader) Upload(ctx context.Context, req *model.OptimizationRequest) (*model.OptimizationResult, error) {
	m.calls++
	m.lastReq = req
	return m.uploadFn(ctx, req)
}

//----------------------------------

type mockFetcher struct {
	calls int
	getFn func(ctx context.Context, url string) (*model.FetchResponse, error)
}

func (m *mockFetcher) Get(ctx context.Context, url string) (*model.FetchResponse, error) {
	m.calls++
	return m.getFn(ctx, url)
}

//----------------------------------

type mockFileStore struct {
	realpathFn func(ctx context.Context, uri string) (string, error)
	saveFn     func(ctx context.Context, data []byte, uri string, mode model.WriteMode) error
}

func (m *mockFileStore) Realpath(ctx context.Context, uri string) (string, error) {
	return m.realpathFn(ctx, uri)
}

func (m *mockFileStore) SaveData(ctx context.Context, data []byte, uri string, mode model.WriteMode) error {
	return m.saveFn(ctx, data, uri, mode)
}
