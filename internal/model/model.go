// Package model provides data-structs for internal app-usage
package model

import (
	"errors"
	"strings"

	"github.com/disintegration/imaging"
)

// OptimizationRequest - то, что уходит в Optidash. Создается заново на каждый вызов
type OptimizationRequest struct {
	FilePath  string
	Lossy     bool
	APIKey    string
	APISecret string
}

// OptimizationResult - ответ Optidash после загрузки файла с wait=true
type OptimizationResult struct {
	Success       bool   `json:"success"`
	ResultURL     string `json:"optidash_url,omitempty"`
	OriginalSize  *int64 `json:"original_size,omitempty"`
	OptimizedSize *int64 `json:"optidash_size,omitempty"`
	SavedBytes    *int64 `json:"saved_bytes,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Settings - настройки процессора, которые хранит хост
type Settings struct {
	APIKey    string
	APISecret string
	Lossy     bool
}

// DefaultSettings - lossy включен по умолчанию, ключа нет
func DefaultSettings() Settings {
	return Settings{Lossy: true}
}

// FetchResponse - результат скачивания оптимизированного файла
type FetchResponse struct {
	StatusCode int
	Body       []byte
}

type WriteMode int

const (
	ReplaceExisting WriteMode = iota
	FailIfExists
)

//--------------------

// OptimizeTask - тело запроса на постановку картинки в очередь оптимизации
type OptimizeTask struct {
	URI string `json:"uri" binding:"required"`
}

// ------------------

var (
	ErrClientUnavailable    error = errors.New("optidash client is not available")
	ErrMissingCredentials   error = errors.New("optidash API key or secret not set")
	ErrOptimizationRejected error = errors.New("optidash could not optimize the uploaded image")
	ErrDownloadTransport    error = errors.New("failed to download optimized image")
	ErrUnexpectedStatus     error = errors.New("unexpected status while downloading optimized image")
	ErrResolvePath          error = errors.New("failed to resolve image path")
	ErrSaveResult           error = errors.New("failed to replace original image")

	ErrUnknownScheme error = errors.New("unsupported uri scheme")
	ErrOutsideRoot   error = errors.New("uri points outside of its storage root")
	ErrFileExists    error = errors.New("destination file already exists")

	ErrCommon500    error = errors.New("something went wrong. Try again later") // 500
	ErrEmptyURI     error = errors.New("empty image uri provided")              // 400
	ErrIncorrectURI error = errors.New("incorrect image uri provided")          // 400
)

//--------------------

const (
	JPEG    = "image/jpeg"
	PNG     = "image/png"
	GIF     = "image/gif"
	TIFF    = "image/tiff"
	BMP     = "image/bmp"
	Unknown = "application/octet-stream"
)

var GetCType = map[imaging.Format]string{
	imaging.JPEG: JPEG,
	imaging.GIF:  GIF,
	imaging.PNG:  PNG,
	imaging.TIFF: TIFF,
	imaging.BMP:  BMP,
}

// ContentTypeByName - content-type по расширению файла, без чтения содержимого
func ContentTypeByName(name string) string {
	format, err := imaging.FormatFromFilename(strings.ToLower(name))
	if err != nil {
		return Unknown
	}
	if ct, ok := GetCType[format]; ok {
		return ct
	}
	return Unknown
}
