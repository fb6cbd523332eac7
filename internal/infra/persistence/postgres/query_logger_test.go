package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"redcolabora/config"
	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlResult(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestQueryLogger_FailureCarriesRequestAttributes(t *testing.T) {
	var fallback, scoped bytes.Buffer
	l := newQueryLogger(newBufferLogger(&fallback), &config.Config{})

	requestLogger := newBufferLogger(&scoped).With(slog.String("request_id", "req-9"), slog.String("user_id", "u-1"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), sqlResult(`UPDATE "businesses" SET "name"='x'`, 0), errors.New("permission denied for table businesses"))

	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), "Database query failed")
	assert.Contains(t, scoped.String(), "request_id=req-9")
	assert.Contains(t, scoped.String(), "user_id=u-1")
	assert.Contains(t, scoped.String(), "permission denied")
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNil bool
	}{
		{name: "record not found is silent", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNil: true},
		{name: "fast query is silent outside debug", begin: time.Now(), wantNil: true},
		{name: "fast query logged in debug", debug: true, begin: time.Now(), want: "Database query"},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "Slow database query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newQueryLogger(newBufferLogger(&buf), cfg)

			l.Trace(context.Background(), tt.begin, sqlResult("SELECT 1", 1), tt.err)

			if tt.wantNil {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestQueryLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newQueryLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlResult("SELECT 1", 1), errors.New("boom"))
	l.Error(context.Background(), "pool %s", "exhausted")

	assert.Empty(t, buf.String())
}

func TestQueryLogger_Messages(t *testing.T) {
	var buf bytes.Buffer
	l := newQueryLogger(newBufferLogger(&buf), &config.Config{})

	l.Info(context.Background(), "ignored %d", 1)
	l.Warn(context.Background(), "replica %s lagging", "r1")

	assert.NotContains(t, buf.String(), "ignored")
	assert.Contains(t, buf.String(), "replica r1 lagging")
}
