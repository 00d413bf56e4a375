//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// ampgo is silent by default. SetLogger routes diagnostic output from the
// binding layer (library loading, object bridging, engine lifecycle) to a
// zap logger.
var loggerVal atomic.Pointer[zap.Logger]

func init() {
	loggerVal.Store(zap.NewNop())
}

// SetLogger installs a logger for ampgo's diagnostics. Passing nil restores
// the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerVal.Store(l)
}

func logger() *zap.Logger {
	return loggerVal.Load()
}
