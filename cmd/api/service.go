package main

import (
	"context"
)

type OptimizeAPIService interface {
	Enqueue(ctx context.Context, uri string) error
	Summary() string
}
