// Package worker consumes optimize-tasks from the queue and runs the optimization workflow for each
package worker

import (
	"context"
	"strings"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/zlog"
)

type Optimizer interface {
	Optimize(ctx context.Context, uri string, s model.Settings) bool
}

// Committer - подтверждение обработки сообщения в кафке
type Committer interface {
	Commit(ctx context.Context, msg kafkago.Message) error
}

type Worker struct {
	optimizer Optimizer
	settings  model.Settings
	queue     <-chan kafkago.Message
	consumer  Committer
}

func NewWorkerInstance(opt Optimizer, settings model.Settings, q <-chan kafkago.Message, cons Committer) *Worker {
	return &Worker{optimizer: opt, settings: settings, queue: q, consumer: cons}
}

// StartWorker processes messages one by one, so two tasks for the same file never overlap.
func (w *Worker) StartWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-w.queue:
			if !ok {
				zlog.Logger.Info().Msg("Queue channel closed, stopping worker...")
				return
			}
			w.handle(ctx, msg)
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg kafkago.Message) {
	uri := taskURI(msg)
	switch {
	case uri == "":
		zlog.Logger.Warn().Int64("offset", msg.Offset).Msg("Skipping queue-message without image uri")
	case !w.optimizer.Optimize(ctx, uri, w.settings):
		// оптимизацию не ретраим: оригинал остался нетронутым, сообщение коммитим
		zlog.Logger.Warn().Str("uri", uri).Msg("Image left unoptimized")
	}

	if err := w.consumer.Commit(ctx, msg); err != nil {
		zlog.Logger.Error().Err(err).Str("uri", uri).Msg("Failed to commit queue-message")
	}
}

func taskURI(msg kafkago.Message) string {
	if uri := strings.TrimSpace(string(msg.Key)); uri != "" {
		return uri
	}
	return strings.TrimSpace(string(msg.Value))
}
