package optimizer

import (
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/fetcher"
	"github.com/UnendingLoop/OptidashOptimizer/internal/optidash"
	"github.com/UnendingLoop/OptidashOptimizer/internal/settings"
	"github.com/UnendingLoop/OptidashOptimizer/internal/storage"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/zlog"
)

// NewFromConfig wires the workflow from app config. With OPTIDASH_ENDPOINT=off the
// client is left out, so every Optimize call reports ErrClientUnavailable.
func NewFromConfig(appConfig *config.Config) *Workflow {
	timeout := settings.Timeout(appConfig.GetString)
	files := storage.NewFileStore(appConfig, 10*time.Second)

	return NewWorkflow(NewUploader(appConfig.GetString), fetcher.New(timeout), files, zlog.Logger)
}

// NewUploader returns nil when the Optidash client cannot be built, never a typed nil.
func NewUploader(get settings.Getter) Uploader {
	client, err := optidash.New(optidash.Options{
		Endpoint: settings.Endpoint(get),
		Timeout:  settings.Timeout(get),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("Optidash client is unavailable")
		return nil
	}
	return client
}
