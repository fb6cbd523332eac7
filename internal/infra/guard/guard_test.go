package guard

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"redcolabora/config"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestMemoryGuard_SecondAcquireIsBusy(t *testing.T) {
	guard := NewMemoryGuard()
	ctx := context.Background()

	release, err := guard.Acquire(ctx, "business:user")
	require.NoError(t, err)

	_, err = guard.Acquire(ctx, "business:user")
	assert.ErrorIs(t, err, service.ErrGuardBusy)

	// Other keys are independent.
	releaseOther, err := guard.Acquire(ctx, "business:other-user")
	require.NoError(t, err)
	releaseOther()

	release()
	release()

	again, err := guard.Acquire(ctx, "business:user")
	require.NoError(t, err)
	again()
}

func TestMemoryGuard_ConcurrentAcquireSingleWinner(t *testing.T) {
	guard := NewMemoryGuard()

	const attempts = 50
	var (
		winners atomic.Int32
		wg      sync.WaitGroup
		start   = make(chan struct{})
	)

	releases := make(chan func(), attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if release, err := guard.Acquire(context.Background(), "same"); err == nil {
				winners.Add(1)
				releases <- release
			}
		}()
	}

	close(start)
	wg.Wait()
	close(releases)

	assert.Equal(t, int32(1), winners.Load())
	for release := range releases {
		release()
	}
}

func TestRedisGuard_UnreachableIsBackendError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	guard := NewRedisGuard(client, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := guard.Acquire(context.Background(), "business:user")
	assert.True(t, errors.Is(err, domainerrors.ErrBackend))
}

func TestNewToggleGuard(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	memoryCfg := &config.Config{ToggleGuard: &config.ToggleGuardConfig{Driver: DriverMemory}}
	guard, err := NewToggleGuard(Params{Lifecycle: fxtest.NewLifecycle(t), Config: memoryCfg, Logger: logger})
	require.NoError(t, err)
	assert.NotNil(t, guard)

	missingRedis := &config.Config{ToggleGuard: &config.ToggleGuardConfig{Driver: DriverRedis}}
	_, err = NewToggleGuard(Params{Lifecycle: fxtest.NewLifecycle(t), Config: missingRedis, Logger: logger})
	assert.Error(t, err)

	unknown := &config.Config{ToggleGuard: &config.ToggleGuardConfig{Driver: "etcd"}}
	_, err = NewToggleGuard(Params{Lifecycle: fxtest.NewLifecycle(t), Config: unknown, Logger: logger})
	assert.Error(t, err)
}
