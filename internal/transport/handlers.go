// Package transport provides methods for processing requests from endpoints
package transport

import (
	"context"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/wb-go/wbf/ginext"
)

type OptimizeHandler struct {
	service OptimizeService
}

type OptimizeService interface {
	Enqueue(ctx context.Context, uri string) error // поставить картинку в очередь на оптимизацию
	Summary() string                               // текущий режим для админки
}

func NewOptimizeHandler(svc OptimizeService) *OptimizeHandler {
	return &OptimizeHandler{
		service: svc,
	}
}

func (h OptimizeHandler) SimplePinger(ctx *ginext.Context) {
	ctx.JSON(200, map[string]string{"message": "pong"})
}

func (h OptimizeHandler) Summary(ctx *ginext.Context) {
	ctx.JSON(200, map[string]string{"summary": h.service.Summary()})
}

func (h OptimizeHandler) Enqueue(ctx *ginext.Context) {
	var task model.OptimizeTask
	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(400, map[string]string{"error": "uri is required"})
		return
	}

	if err := h.service.Enqueue(ctx.Request.Context(), task.URI); err != nil {
		ctx.JSON(errorCodeDefiner(err), map[string]string{"error": err.Error()})
		return
	}

	ctx.JSON(202, map[string]string{"status": "queued", "uri": task.URI})
}
