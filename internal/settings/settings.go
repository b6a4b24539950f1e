// Package settings builds processor settings and client options from the app config
package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
)

const (
	DefaultEndpoint = "https://api.optidash.ai/1.0/upload"
	DefaultTimeout  = 60 * time.Second
)

// Getter - достаточно GetString из wbf/config, чтобы не тащить сюда весь конфиг
type Getter func(key string) string

// Load reads OPTIDASH_* keys. Unset lossy keeps the default (lossy on).
func Load(get Getter) model.Settings {
	s := model.DefaultSettings()
	s.APIKey = strings.TrimSpace(get("OPTIDASH_API_KEY"))
	s.APISecret = strings.TrimSpace(get("OPTIDASH_API_SECRET"))
	s.Lossy = parseBool(get("OPTIDASH_LOSSY"), s.Lossy)
	return s
}

// Endpoint - адрес upload-метода Optidash. "off"/"disabled"/"none" отключают клиент:
// вернется пустая строка, и процессор будет работать без Optidash
func Endpoint(get Getter) string {
	e := strings.TrimSpace(get("OPTIDASH_ENDPOINT"))
	switch strings.ToLower(e) {
	case "":
		return DefaultEndpoint
	case "off", "disabled", "none":
		return ""
	default:
		return e
	}
}

// Timeout - таймаут HTTP-клиентов. Сервис держит ответ до конца обработки, поэтому дефолт большой
func Timeout(get Getter) time.Duration {
	raw := strings.TrimSpace(get("HTTP_TIMEOUT"))
	if raw == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

func parseBool(raw string, def bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
