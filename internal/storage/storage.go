// Package storage picks the file store backend the optimizer reads images from and writes them to
package storage

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/UnendingLoop/OptidashOptimizer/internal/storage/localstore"
	"github.com/UnendingLoop/OptidashOptimizer/internal/storage/miniostorage"
	"github.com/wb-go/wbf/config"
)

const (
	BackendLocal = "local"
	BackendMinio = "minio"
)

// FileStore - контракт для работы с файлами картинок
type FileStore interface {
	Realpath(ctx context.Context, uri string) (string, error)
	SaveData(ctx context.Context, data []byte, uri string, mode model.WriteMode) error
}

// NewFileStore - по умолчанию локальная ФС; для minio ждем, пока хранилище поднимется
func NewFileStore(cfg *config.Config, delay time.Duration) FileStore {
	switch strings.ToLower(cfg.GetString("STORAGE_BACKEND")) {
	case BackendMinio:
		return newMinioStorage(cfg, delay)
	default:
		return localstore.New(localstore.Dirs{
			Public:    cfg.GetString("PUBLIC_DIR"),
			Private:   cfg.GetString("PRIVATE_DIR"),
			Temporary: cfg.GetString("TEMP_DIR"),
		})
	}
}

func newMinioStorage(cfg *config.Config, delay time.Duration) *miniostorage.MinioImageStorage {
	for {
		log.Println("Connecting to IMG-storage...")
		client, err := miniostorage.NewMinioClient(cfg)
		if err != nil {
			log.Printf("Failed to init connection to IMG-storage: %v\nNext retry in %v...", err, delay)
			time.Sleep(delay)
			continue
		}
		log.Println("Successfully connected IMG-storage!")
		return client
	}
}
