package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelOff
)

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LogLevelDebug, nil
	case "INFO":
		return LogLevelInfo, nil
	case "WARN", "WARNING":
		return LogLevelWarn, nil
	case "ERROR":
		return LogLevelError, nil
	case "OFF", "NONE":
		return LogLevelOff, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

var levelColors = map[LogLevel]*color.Color{
	LogLevelDebug: color.New(color.FgHiBlack),
	LogLevelInfo:  color.New(color.FgCyan),
	LogLevelWarn:  color.New(color.FgYellow),
	LogLevelError: color.New(color.FgRed, color.Bold),
}

// Logger is the leveled printf-style logger used across symexpr.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetLevel(level LogLevel)
	GetLevel() LogLevel
	Enabled(level LogLevel) bool
}

// DefaultLogger implements the Logger interface on top of a log.Logger
type DefaultLogger struct {
	level  LogLevel
	logger *log.Logger
	mu     sync.RWMutex
}

// NewLogger creates a new logger instance
func NewLogger(output io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		level:  level,
		logger: log.New(output, "", log.LstdFlags),
	}
}

// SetLevel sets the minimum log level
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *DefaultLogger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Enabled reports whether messages at level would be written.
func (l *DefaultLogger) Enabled(level LogLevel) bool {
	return level >= l.GetLevel() && level < LogLevelOff
}

func (l *DefaultLogger) log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	tag := "[" + level.String() + "]"
	if c, ok := levelColors[level]; ok {
		tag = c.Sprint(tag)
	}
	l.logger.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an info message
func (l *DefaultLogger) Info(format string, args ...any) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message
func (l *DefaultLogger) Warn(format string, args ...any) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}

var globalLogger Logger = NewLogger(os.Stderr, LogLevelInfo)

// SetLogger replaces the global logger and returns the previous one.
func SetLogger(l Logger) Logger {
	old := globalLogger
	globalLogger = l
	return old
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

// GetLogLevel returns the current global log level
func GetLogLevel() LogLevel {
	return globalLogger.GetLevel()
}

// Enabled reports whether the global logger writes messages at level.
func Enabled(level LogLevel) bool {
	return globalLogger.Enabled(level)
}

func Debug(format string, args ...any) {
	globalLogger.Debug(format, args...)
}

func Info(format string, args ...any) {
	globalLogger.Info(format, args...)
}

func Warn(format string, args ...any) {
	globalLogger.Warn(format, args...)
}

func Error(format string, args ...any) {
	globalLogger.Error(format, args...)
}

func init() {
	if levelStr := os.Getenv("SYMEXPR_LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLogLevel(levelStr); err == nil {
			SetLogLevel(level)
		}
	}

	// In test mode, default to ERROR level only
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLogLevel(LogLevelError)
	}
}
