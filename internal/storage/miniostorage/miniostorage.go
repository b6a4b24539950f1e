// Package miniostorage provides an object-backed image store on top of minio
package miniostorage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wb-go/wbf/config"
)

const Scheme = "s3"

type MinioImageStorage struct {
	bucket   string
	cacheDir string
	client   *minio.Client
}

func NewMinioClient(cfg *config.Config) (*MinioImageStorage, error) {
	bucket := cfg.GetString("BUCKET_NAME")
	if bucket == "" {
		bucket = "default"
		log.Printf("Bucket name is empty. Using default value %q...", bucket)
	}

	cacheDir := cfg.GetString("MINIO_CACHE_DIR")
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "optidash-cache")
	}

	user := cfg.GetString("MINIO_USER")
	pass := cfg.GetString("MINIO_PASS")
	addr := cfg.GetString("MINIO_ENDPOINT")
	if addr == "" {
		addr = cfg.GetString("MINIO_CONTAINER_NAME") + ":9000"
	}
	secure, _ := strconv.ParseBool(cfg.GetString("MINIO_SECURE"))

	// подключаемся к минио - создаем клиента
	strg, err := minio.New(addr, &minio.Options{
		Creds:  credentials.NewStaticV4(user, pass, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	// картинки должны уже лежать в бакете, поэтому не создаем его, а только проверяем
	exists, err := strg.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	return &MinioImageStorage{bucket: bucket, cacheDir: cacheDir, client: strg}, nil
}

// Realpath downloads the object into the local cache and returns the cached file path.
func (s *MinioImageStorage) Realpath(ctx context.Context, uri string) (string, error) {
	key, err := objectKey(uri)
	if err != nil {
		return "", err
	}

	local, err := cachePath(s.cacheDir, key)
	if err != nil {
		return "", err
	}

	if err := s.client.FGetObject(ctx, s.bucket, key, local, minio.GetObjectOptions{}); err != nil {
		return "", fmt.Errorf("failed to fetch %q from storage: %w", key, err)
	}
	return local, nil
}

// SaveData puts the bytes back under the same key. PutObject is all-or-nothing
// on the minio side, a failed upload keeps the previous version.
func (s *MinioImageStorage) SaveData(ctx context.Context, data []byte, uri string, mode model.WriteMode) error {
	key, err := objectKey(uri)
	if err != nil {
		return err
	}

	if mode == model.FailIfExists {
		_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return fmt.Errorf("%w: %q", model.ErrFileExists, key)
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return err
		}
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: model.ContentTypeByName(key),
	}); err != nil {
		return err
	}

	// закешированный оригинал больше не актуален
	if local, err := cachePath(s.cacheDir, key); err == nil {
		if rmErr := os.Remove(local); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Println("Failed to drop cached copy:", rmErr)
		}
	}
	return nil
}

func objectKey(uri string) (string, error) {
	if uri == "" {
		return "", model.ErrEmptyURI
	}

	key := uri
	if scheme, rest, ok := strings.Cut(uri, "://"); ok {
		if scheme != Scheme {
			return "", fmt.Errorf("%w: %q", model.ErrUnknownScheme, scheme)
		}
		key = rest
	}

	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" {
		return "", model.ErrIncorrectURI
	}
	return key, nil
}

func cachePath(dir, key string) (string, error) {
	local := filepath.Join(dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return "", err
	}
	return local, nil
}
