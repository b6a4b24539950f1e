package worker

import (
	"context"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	kafkago "github.com/segmentio/kafka-go"
)

type mockOptimizer struct {
	uris       []string
	optimizeFn func(ctx context.Context, uri string, s model.Settings) bool
}

func (m *mockOptimizer) Optimize(ctx context.Context, uri string, s model.Settings) bool {
	m.uris = append(m.uris, uri)
	return m.optimizeFn(ctx, uri, s)
}

//----------------------------------

type mockCommitter struct {
	committed []kafkago.Message
	commitErr error
}

func (m *mockCommitter) Commit(ctx context.Context, msg kafkago.Message) error {
	m.committed = append(m.committed, msg)
	return m.commitErr
}
