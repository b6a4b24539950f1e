package worker

import (
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"
)

func init() {
	// глобальный логгер в тестах молчит
	zlog.Logger = zerolog.Nop()
}
