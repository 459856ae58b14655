package logger

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestLogger(t *testing.T) {
	buffer, cleanup := CaptureLog(t, LogLevelInfo)
	defer cleanup()

	Debug("This should not appear")
	Info("This should appear")
	Warn("This warning should appear")
	Error("This error should appear: %d", 42)

	logs := buffer.String()
	assert.NotContains(t, logs, "This should not appear")
	assert.Contains(t, logs, "[INFO] This should appear")
	assert.Contains(t, logs, "[WARN] This warning should appear")
	assert.Contains(t, logs, "[ERROR] This error should appear: 42")
}

func TestQuietTest(t *testing.T) {
	buffer, cleanup := CaptureLog(t, LogLevelDebug)
	defer cleanup()
	restore := QuietTest(t)

	Error("Error message")
	assert.Empty(t, buffer.String())

	restore()
	Debug("back")
	assert.Contains(t, buffer.String(), "[DEBUG] back")
}

func TestEnabled(t *testing.T) {
	l := NewLogger(&discard{}, LogLevelWarn)
	assert.False(t, l.Enabled(LogLevelDebug))
	assert.False(t, l.Enabled(LogLevelInfo))
	assert.True(t, l.Enabled(LogLevelWarn))
	assert.True(t, l.Enabled(LogLevelError))
	assert.False(t, l.Enabled(LogLevelOff))

	l.SetLevel(LogLevelOff)
	assert.False(t, l.Enabled(LogLevelError))
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		hasError bool
	}{
		{"DEBUG", LogLevelDebug, false},
		{"debug", LogLevelDebug, false},
		{" info ", LogLevelInfo, false},
		{"WARN", LogLevelWarn, false},
		{"WARNING", LogLevelWarn, false},
		{"ERROR", LogLevelError, false},
		{"OFF", LogLevelOff, false},
		{"NONE", LogLevelOff, false},
		{"INVALID", LogLevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.hasError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
