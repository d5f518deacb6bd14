package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, zapLevel zapcore.Level) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapLevel)
	return NewGormLogger(zap.New(core), level), recorded
}

func TestNewGormLogger(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info, zapcore.InfoLevel)

	assert.Equal(t, gormlogger.Info, gormLog.logLevel)
	assert.Equal(t, defaultSlowThreshold, gormLog.SlowThreshold)
	assert.True(t, gormLog.SkipRecordNotFound)
}

func TestGormLogger_LogMode(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info, zapcore.InfoLevel)

	clone := gormLog.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, gormLog.logLevel)
	cloned, ok := clone.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, cloned.logLevel)
}

func TestGormLogger_LevelGating(t *testing.T) {
	t.Run("info passes at info level", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info, zapcore.InfoLevel)
		gormLog.Info(context.Background(), "migrated %s", "documents")
		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "migrated documents")
	})

	t.Run("info suppressed at silent level", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Silent, zapcore.InfoLevel)
		gormLog.Info(context.Background(), "migrated documents")
		assert.Empty(t, recorded.All())
	})

	t.Run("warn and error pass at their levels", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Warn, zapcore.WarnLevel)
		gormLog.Warn(context.Background(), "pool exhausted %d", 25)
		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})
}

func TestGormLogger_Trace(t *testing.T) {
	query := func() (string, int64) {
		return "SELECT * FROM documents WHERE doc_type = ?", 2
	}

	t.Run("error trace logs the error", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error, zapcore.ErrorLevel)
		gormLog.Trace(context.Background(), time.Now(), query, errors.New("deadlock"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "sql error", logs[0].Message)
	})

	t.Run("record not found is skipped", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error, zapcore.ErrorLevel)
		gormLog.Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)
		assert.Empty(t, recorded.All())
	})

	t.Run("record not found logs when skipping disabled", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error, zapcore.ErrorLevel)
		gormLog.SkipRecordNotFound = false
		gormLog.Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)
		assert.Len(t, recorded.All(), 1)
	})

	t.Run("slow query warns", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Warn, zapcore.WarnLevel)
		gormLog.SlowThreshold = time.Nanosecond
		gormLog.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "slow sql")
	})

	t.Run("normal query logs at debug", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info, zapcore.DebugLevel)
		gormLog.Trace(context.Background(), time.Now(), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "sql trace", logs[0].Message)
		assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Silent, zapcore.DebugLevel)
		gormLog.Trace(context.Background(), time.Now(), query, nil)
		assert.Empty(t, recorded.All())
	})

	t.Run("request id from context is attached", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info, zapcore.DebugLevel)
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")

		gormLog.Trace(ctx, time.Now(), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "req-42", logs[0].ContextMap()["request_id"])
	})
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}

func TestGormLoggerImplementsInterface(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info, zapcore.InfoLevel)
	var _ gormlogger.Interface = gormLog
}
