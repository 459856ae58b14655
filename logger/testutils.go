package logger

import (
	"bytes"
	"testing"
)

// QuietTest silences all logging until the returned func is called
func QuietTest(t testing.TB) func() {
	oldLevel := GetLogLevel()
	SetLogLevel(LogLevelOff)
	return func() {
		SetLogLevel(oldLevel)
	}
}

// CaptureLog redirects the global logger into a buffer at the given level.
// Call the returned func to restore the previous logger.
func CaptureLog(t testing.TB, level LogLevel) (*bytes.Buffer, func()) {
	buffer := &bytes.Buffer{}
	old := SetLogger(NewLogger(buffer, level))
	return buffer, func() {
		SetLogger(old)
	}
}
