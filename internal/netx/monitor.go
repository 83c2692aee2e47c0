package netx

import (
	"context"
	"sync/atomic"
	"time"
)

const probeTimeout = 3 * time.Second

// Monitor holds the last known connectivity state. It starts online.
// Safe for concurrent use.
type Monitor struct {
	offline atomic.Bool
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) Online() bool {
	return !m.offline.Load()
}

// Set records the state and reports whether it changed.
func (m *Monitor) Set(online bool) bool {
	return m.offline.Swap(!online) == online
}

// Watch calls probe every interval until ctx is done and records the result.
// onChange, when not nil, is called after every transition.
func (m *Monitor) Watch(ctx context.Context, interval time.Duration, probe func(ctx context.Context) error, onChange func(online bool)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, probeTimeout)
			err := probe(pctx)
			cancel()

			online := err == nil
			if m.Set(online) && onChange != nil {
				onChange(online)
			}

		case <-ctx.Done():
			return
		}
	}
}
