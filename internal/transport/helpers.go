package transport

import (
	"errors"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
)

func errorCodeDefiner(err error) int {
	switch {
	case errors.Is(err, model.ErrCommon500):
		return 500
	case errors.Is(err, model.ErrEmptyURI),
		errors.Is(err, model.ErrIncorrectURI):
		return 400
	default:
		return 500
	}
}
