package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("slow queries are warned", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries are silent outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("request scoped logger is preferred", func(t *testing.T) {
		var baseBuf, scopedBuf bytes.Buffer
		l := newTestGormLogger(&baseBuf, true)
		scoped := slog.New(slog.NewTextHandler(&scopedBuf, nil)).With(slog.String("request_id", "req-42"))
		ctx := deliverycontext.WithLogger(context.Background(), scoped)

		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, baseBuf.String())
		assert.Contains(t, scopedBuf.String(), "request_id=req-42")
	})
}
