// Package optimizer runs the optimize-and-replace workflow: upload an image to Optidash,
// download the optimized version and overwrite the original with it.
//
// The workflow does not serialize calls per file. Two concurrent Optimize calls for the
// same URI race on the final overwrite; the queue worker processes messages one at a
// time, which is what keeps this safe in the deployed setup.
package optimizer

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/rs/zerolog"
)

// Uploader - клиент Optidash
type Uploader interface {
	Upload(ctx context.Context, req *model.OptimizationRequest) (*model.OptimizationResult, error)
}

// Fetcher - HTTP GET для скачивания результата
type Fetcher interface {
	Get(ctx context.Context, url string) (*model.FetchResponse, error)
}

// FileStore - резолв URI и перезапись файла
type FileStore interface {
	Realpath(ctx context.Context, uri string) (string, error)
	SaveData(ctx context.Context, data []byte, uri string, mode model.WriteMode) error
}

type Workflow struct {
	client  Uploader
	fetcher Fetcher
	files   FileStore
	logger  zerolog.Logger
}

// NewWorkflow - nil client means the Optidash client is unavailable; every Optimize call
// then fails before touching the network.
func NewWorkflow(client Uploader, fetcher Fetcher, files FileStore, logger zerolog.Logger) *Workflow {
	return &Workflow{client: client, fetcher: fetcher, files: files, logger: logger}
}

// Optimize replaces the image at uri with its optimized version. Failures are logged
// and reported as false; the original is only touched after a complete 200 download.
func (w *Workflow) Optimize(ctx context.Context, uri string, s model.Settings) bool {
	if err := w.run(ctx, uri, s); err != nil {
		w.logger.Error().Err(err).Str("file", uri).Msg("Optidash optimization failed")
		return false
	}
	return true
}

func (w *Workflow) run(ctx context.Context, uri string, s model.Settings) error {
	if w.client == nil {
		return model.ErrClientUnavailable
	}
	if s.APIKey == "" || s.APISecret == "" {
		return model.ErrMissingCredentials
	}

	absPath, err := w.files.Realpath(ctx, uri)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrResolvePath, err)
	}

	// wait=true: сервис отвечает только после окончания обработки, поллинг не нужен
	res, err := w.client.Upload(ctx, &model.OptimizationRequest{
		FilePath:  absPath,
		Lossy:     s.Lossy,
		APIKey:    s.APIKey,
		APISecret: s.APISecret,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrOptimizationRejected, err)
	}
	if res == nil || !res.Success || res.ResultURL == "" {
		return rejected(res)
	}

	optimized, err := w.fetcher.Get(ctx, res.ResultURL)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrDownloadTransport, err)
	}
	if optimized.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d from %s", model.ErrUnexpectedStatus, optimized.StatusCode, res.ResultURL)
	}

	if err := w.files.SaveData(ctx, optimized.Body, uri, model.ReplaceExisting); err != nil {
		return fmt.Errorf("%w: %w", model.ErrSaveResult, err)
	}

	ev := w.logger.Info().Str("file", uri)
	addSize(ev, "original_size", res.OriginalSize)
	addSize(ev, "optidash_size", res.OptimizedSize)
	addSize(ev, "saved_bytes", res.SavedBytes)
	ev.Msgf("%s was successfully processed by Optidash. All figures in bytes", filepath.Base(uri))

	return nil
}

// Summary - строка для админки хоста
func (w *Workflow) Summary(s model.Settings) string {
	return Summary(w.client != nil, s)
}

// Summary describes the processor configuration the way the host admin page shows it.
func Summary(clientAvailable bool, s model.Settings) string {
	switch {
	case !clientAvailable:
		return "Could not locate Optidash client."
	case s.Lossy:
		return "Using lossy compression."
	default:
		return "Using lossless compression."
	}
}

func rejected(res *model.OptimizationResult) error {
	if res != nil && res.Message != "" {
		return fmt.Errorf("%w: %s", model.ErrOptimizationRejected, res.Message)
	}
	return model.ErrOptimizationRejected
}

func addSize(ev *zerolog.Event, key string, v *int64) {
	if v != nil {
		ev.Int64(key, *v)
	}
}
