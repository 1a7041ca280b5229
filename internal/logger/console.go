// Package logger provides leveled logging for findfiles runs.
//
// The console logger writes timestamped diagnostics to a writer (normally
// stderr) and the file logger records a full run trace under a log
// directory. Both filter by level and are safe for reuse across the
// pipeline stages.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// ConsoleLogger logs diagnostics to a writer with [HH:MM:SS] timestamps.
// It supports log level filtering and colorizes warn/error output when the
// writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided
// io.Writer. If writer is nil, messages are silently discarded.
// Valid levels: debug, info, warn, error (case-insensitive); empty or
// invalid levels default to "info". Color output is enabled automatically
// when writing to os.Stdout or os.Stderr with TTY support.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// The color library's detection also honors NO_COLOR.
		return !color.NoColor
	}
	return false
}

// normalizeLogLevel lowercases and validates a log level string.
// Returns "info" for empty or unknown levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.log("debug", "DEBUG", message, nil)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.log("info", "INFO", message, nil)
}

// LogWarn logs a warn-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.log("warn", "WARN", message, color.New(color.FgYellow))
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.log("error", "ERROR", message, color.New(color.FgRed))
}

func (cl *ConsoleLogger) log(level, tag, message string, c *color.Color) {
	if cl.writer == nil || !cl.shouldLog(level) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	line := fmt.Sprintf("[%s] %s: %s", time.Now().Format("15:04:05"), tag, message)
	if cl.colorOutput && c != nil {
		line = c.Sprint(line)
	}
	fmt.Fprintln(cl.writer, line)
}
