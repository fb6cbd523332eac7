package guard

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "redcolabora/internal/delivery/context"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/domain/lifecycle"
	"redcolabora/internal/domain/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "redcolabora:guard:"

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisGuard shares the guard across instances. The TTL bounds how long a
// crashed holder can block the key.
type redisGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisGuard creates a guard backed by SET NX PX.
func NewRedisGuard(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.ToggleGuard {
	return &redisGuard{client: client, ttl: ttl, logger: logger}
}

func (g *redisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	redisKey := redisKeyPrefix + key

	acquired, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, domainerrors.ErrBackend.WithDetails("guard: " + err.Error())
	}
	if !acquired {
		return nil, service.ErrGuardBusy
	}

	return func() {
		// The request context may already be cancelled when release runs.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, g.client, []string{redisKey}, token).Err(); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, g.logger).Warn("Failed to release guard",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}, nil
}
