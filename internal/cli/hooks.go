package cli

import (
	"context"
	"time"

	"github.com/matzehuels/automata/pkg/observability"
)

// logHooks reports pipeline events at debug level on the logger carried by
// the command context.
type logHooks struct{}

func (logHooks) OnLoadStart(ctx context.Context, path string) {
	loggerFromContext(ctx).Debug("loading definition", "path", path)
}

func (logHooks) OnLoadComplete(ctx context.Context, path string, states int, d time.Duration, err error) {
	if err != nil {
		loggerFromContext(ctx).Debug("load failed", "path", path, "err", err)
		return
	}
	loggerFromContext(ctx).Debug("load complete", "path", path, "states", states, "duration", d)
}

func (logHooks) OnApplyStart(ctx context.Context, op string, states int) {
	loggerFromContext(ctx).Debug("applying", "op", op, "states", states)
}

func (logHooks) OnApplyComplete(ctx context.Context, op string, states int, d time.Duration, err error) {
	if err != nil {
		loggerFromContext(ctx).Debug("apply failed", "op", op, "err", err)
		return
	}
	loggerFromContext(ctx).Debug("apply complete", "op", op, "states", states, "duration", d)
}

func (logHooks) OnCacheHit(ctx context.Context, op string) {
	loggerFromContext(ctx).Debug("cache hit", "op", op)
}

func (logHooks) OnCacheMiss(ctx context.Context, op string) {
	loggerFromContext(ctx).Debug("cache miss", "op", op)
}

func (logHooks) OnCacheSet(ctx context.Context, op string, size int) {
	loggerFromContext(ctx).Debug("cache set", "op", op, "bytes", size)
}

var (
	_ observability.OperationHooks = logHooks{}
	_ observability.CacheHooks     = logHooks{}
)
