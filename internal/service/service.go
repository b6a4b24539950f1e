// Package service provides business-logic for the API side: queueing images for optimization
package service

import (
	"context"
	"strings"
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/UnendingLoop/OptidashOptimizer/internal/mwlogger"
	"github.com/UnendingLoop/OptidashOptimizer/internal/optimizer"
	"github.com/wb-go/wbf/retry"
)

type OptimizeService struct {
	publisher       TaskPublisher
	settings        model.Settings
	clientAvailable bool
}

func NewOptimizeService(pub TaskPublisher, settings model.Settings, clientAvailable bool) *OptimizeService {
	return &OptimizeService{
		publisher:       pub,
		settings:        settings,
		clientAvailable: clientAvailable,
	}
}

// TaskPublisher - контракт для работы с очередью
type TaskPublisher interface {
	SendWithRetry(ctx context.Context, strategy retry.Strategy, key []byte, v []byte) error
}

// Стратегия ретрая отправки в очередь. Саму оптимизацию не ретраим
var retryStrategy = retry.Strategy{
	Attempts: 5,
	Delay:    3 * time.Second,
	Backoff:  1.5,
}

// Enqueue puts the image URI to the task queue; the worker picks it up and optimizes it.
func (s OptimizeService) Enqueue(ctx context.Context, uri string) error {
	logger := mwlogger.LoggerFromContext(ctx)

	uri = strings.TrimSpace(uri)
	if uri == "" {
		return model.ErrEmptyURI
	}
	if strings.ContainsRune(uri, 0) {
		return model.ErrIncorrectURI
	}

	if err := s.publisher.SendWithRetry(ctx, retryStrategy, []byte(uri), nil); err != nil {
		logger.Error().Err(err).Str("uri", uri).Msg("Failed to publish image to task-queue")
		return model.ErrCommon500
	}

	logger.Info().Str("uri", uri).Msg("Image queued for optimization")
	return nil
}

func (s OptimizeService) Summary() string {
	return optimizer.Summary(s.clientAvailable, s.settings)
}
