package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/dpda/pkg/adapters/memory"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LockLifecycle(t *testing.T) {
	a, err := automaton.New(1, "a")
	require.NoError(t, err)
	mgr := NewManager(a, memory.NewStore())
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_, _ = mgr.Open(ctx, sid)
		_ = mgr.Delete(ctx, sid)
	}

	assert.Empty(t, mgr.locks, "lock entries must be released once unused")
}

type ttlRecorder struct {
	mu   sync.Mutex
	ttls []time.Duration
}

func (r *ttlRecorder) Lock(_ context.Context, _ string, ttl time.Duration) (ports.UnlockFunc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ttls = append(r.ttls, ttl)
	return func(context.Context) error { return nil }, nil
}

func TestManager_LockTTL(t *testing.T) {
	a, err := automaton.New(1, "a")
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name string
		opts []Option
		want time.Duration
	}{
		{name: "Default", want: 30 * time.Second},
		{name: "Configured", opts: []Option{WithLockTTL(5 * time.Second)}, want: 5 * time.Second},
		{name: "Zero keeps default", opts: []Option{WithLockTTL(0)}, want: 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locker := &ttlRecorder{}
			mgr := NewManager(a, memory.NewStore(), append(tt.opts, WithLocker(locker))...)

			_, err := mgr.Start(ctx)
			require.NoError(t, err)
			require.Len(t, locker.ttls, 1)
			assert.Equal(t, tt.want, locker.ttls[0])
		})
	}
}
