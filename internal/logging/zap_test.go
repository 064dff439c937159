package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	want := []struct {
		level zapcore.Level
		msg   string
		key   string
		val   int64
	}{
		{zapcore.DebugLevel, "dbg", "a", 1},
		{zapcore.InfoLevel, "inf", "b", 2},
		{zapcore.WarnLevel, "wrn", "c", 3},
		{zapcore.ErrorLevel, "err", "d", 4},
	}
	for i, w := range want {
		assert.Equal(t, w.level, entries[i].Level)
		assert.Equal(t, w.msg, entries[i].Message)
		assert.Equal(t, map[string]any{w.key: w.val}, entries[i].ContextMap())
	}
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapLogger(zap.New(core)).With("module", "test")

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "shown", "k", "v")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"module": "test", "k": "v"}, entries[0].ContextMap())
}

func TestNewZapJSONLogger(t *testing.T) {
	log, err := NewZapJSONLogger(zapcore.WarnLevel)
	require.NoError(t, err)

	var _ Logger = log
	log.Info(context.Background(), "filtered")
	_ = log.Sync()
}
