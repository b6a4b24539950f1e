package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func getterFrom(m map[string]string) Getter {
	return func(key string) string { return m[key] }
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantKey   string
		wantSec   string
		wantLossy bool
	}{
		{
			name:      "empty env keeps defaults",
			env:       map[string]string{},
			wantLossy: true,
		},
		{
			name: "all set",
			env: map[string]string{
				"OPTIDASH_API_KEY":    " key ",
				"OPTIDASH_API_SECRET": "secret",
				"OPTIDASH_LOSSY":      "false",
			},
			wantKey:   "key",
			wantSec:   "secret",
			wantLossy: false,
		},
		{
			name:      "garbage lossy falls back to default",
			env:       map[string]string{"OPTIDASH_LOSSY": "maybe"},
			wantLossy: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Load(getterFrom(tt.env))
			require.Equal(t, tt.wantKey, s.APIKey)
			require.Equal(t, tt.wantSec, s.APISecret)
			require.Equal(t, tt.wantLossy, s.Lossy)
		})
	}
}

func TestEndpoint(t *testing.T) {
	require.Equal(t, DefaultEndpoint, Endpoint(getterFrom(nil)))
	require.Equal(t, "http://local/upload", Endpoint(getterFrom(map[string]string{"OPTIDASH_ENDPOINT": "http://local/upload"})))

	for _, off := range []string{"off", "Disabled", " none "} {
		require.Empty(t, Endpoint(getterFrom(map[string]string{"OPTIDASH_ENDPOINT": off})), off)
	}
}

func TestTimeout(t *testing.T) {
	require.Equal(t, DefaultTimeout, Timeout(getterFrom(nil)))
	require.Equal(t, DefaultTimeout, Timeout(getterFrom(map[string]string{"HTTP_TIMEOUT": "-1s"})))
	require.Equal(t, DefaultTimeout, Timeout(getterFrom(map[string]string{"HTTP_TIMEOUT": "soon"})))
	require.Equal(t, 5*time.Second, Timeout(getterFrom(map[string]string{"HTTP_TIMEOUT": "5s"})))
}
