package transport

import (
	"context"

	"github.com/gin-gonic/gin"
)

type mockOptimizeService struct {
	enqueueFn func(ctx context.Context, uri string) error
	summary   string
}

func (m *mockOptimizeService) Enqueue(ctx context.Context, uri string) error {
	return m.enqueueFn(ctx, uri)
}

func (m *mockOptimizeService) Summary() string {
	return m.summary
}

func init() {
	gin.SetMode(gin.TestMode)
}
