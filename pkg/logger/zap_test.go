package logger

import (
	"context"
	"testing"

	"github.com/iamjuaness/mi-boleta/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedGlobals(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestGetLoggerFromContextCarriesCorrelationID(t *testing.T) {
	logs := observedGlobals(t)

	ctx := context.WithValue(context.Background(), constant.CorrelationIDKey, "cid-123")
	GetLoggerFromContext(ctx).Info("request handled")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cid-123", entries[0].ContextMap()["correlation_id"])
}

func TestGetLoggerFromContextWithoutCorrelationID(t *testing.T) {
	logs := observedGlobals(t)

	GetLoggerFromContext(context.Background()).Info("request handled")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "correlation_id")
}

func TestWithCorrelationIDIgnoresEmptyID(t *testing.T) {
	logs := observedGlobals(t)

	WithCorrelationID(zap.L(), "").Info("no id")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "correlation_id")
}

func TestWithErrorAttachesError(t *testing.T) {
	logs := observedGlobals(t)

	WithError(zap.L(), assert.AnError).Warn("lookup failed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, assert.AnError.Error(), entries[0].ContextMap()["error"])
}
