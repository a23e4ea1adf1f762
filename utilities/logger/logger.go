// Package logger provides a simple logging system for the icon generator.
// It supports different log levels (Debug, Info, Warn, Error, Fatal) and can
// output to stdout, a file, or both simultaneously. Silent mode suppresses
// everything below Error on the console.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Log levels in increasing order of severity.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Package-level variables for logger configuration
var (
	mu          sync.Mutex
	logFile     string                                        // Path to log file (if logging to file)
	logDest     = log.New(os.Stdout, "", log.Ldate|log.Ltime) // Default: log to stdout
	logFileDest *log.Logger                                   // Logger for file output (nil if not set)
	logLevel    = LevelDebug                                  // Minimum level printed on the console
	silence     = false                                       // If true, suppress non-error messages
)

// levelNames maps the names accepted by SetLevel to log levels.
var levelNames = map[string]int{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// SetSilent enables or disables silent mode.
// When silent mode is enabled, only error messages are displayed.
// This is useful for build scripts where the asset list is not interesting.
//
// Parameters:
//   - isSilent: true to enable silent mode, false to show all messages
func SetSilent(isSilent bool) {
	mu.Lock()
	defer mu.Unlock()
	silence = isSilent
}

// SetLevel sets the minimum level printed on the console. The log file, if
// any, always receives every message.
//
// Parameters:
//   - level: debug, info, warn (or warning) or error, in any case
//
// Returns an error for an unknown level name; the level is left unchanged.
func SetLevel(level string) error {
	value, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	mu.Lock()
	defer mu.Unlock()
	logLevel = value
	return nil
}

// SetOutput redirects console output. Mostly used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logDest = log.New(w, "", log.Ldate|log.Ltime)
}

// logFormat formats a log message with optional values and then prints it.
func logFormat(level int, logType string, format string, values ...any) {
	logMessage := format
	if len(values) > 0 {
		logMessage = fmt.Sprintf(format, values...)
	}

	logPrint(level, logType, logMessage)
}

// logPrint is the core logging function that actually writes the message.
// If a log file is configured, messages are written to both stdout and the file.
func logPrint(level int, logType string, message string) {
	logMessage := "[" + logType + "] " + message

	mu.Lock()
	defer mu.Unlock()

	// Errors always reach the console, whatever the silent flag says
	if level >= LevelError || (!silence && level >= logLevel) {
		logDest.Println(logMessage)
	}

	if logFileDest != nil {
		logFileDest.Println(logMessage)
	}
}

// The following functions provide different log levels for different purposes.
// Each function can take either a simple string or a format string with values.

// Debug logs a debug message (detailed information for developers).
func Debug(format string, values ...any) {
	logFormat(LevelDebug, "Debug", format, values...)
}

// Info logs an informational message (which asset was written, where).
func Info(format string, values ...any) {
	logFormat(LevelInfo, "Info", format, values...)
}

// Warn logs a warning message (something unexpected but not fatal, like a
// missing source image or a file that maps to no icon type).
func Warn(format string, values ...any) {
	logFormat(LevelWarn, "Warn", format, values...)
}

// Error logs an error. It does not stop the program; the caller decides
// whether the error is fatal.
//
// Parameters:
//   - err: The error to log, nil is ignored
func Error(err error) {
	if err == nil {
		return
	}
	logPrint(LevelError, "Error", err.Error())
}

// Fatal logs a fatal error message with a format string.
func Fatal(format string, values ...any) {
	logFormat(LevelError, "Fatal", format, values...)
}

// SetLogFile sets up logging to a file in addition to stdout.
// The log file will be created with a name based on the application name and current date/time.
// Format: <appName>_YYYY-MM-DD_HH-MM-SS.log
// If logDir is empty, the file will be created in the current directory.
//
// Parameters:
//   - appName: Name of the application (used in filename)
//   - logDir: Directory where the log file should be created (empty string = current directory)
//
// Returns an error if the log file cannot be created or opened.
func SetLogFile(appName string, logDir string) error {
	timeStr := time.Now().Format("2006-01-02_15-04-05")
	fileName := fmt.Sprintf("%s_%s.log", appName, timeStr)

	filePath := fileName
	if logDir != "" {
		filePath = filepath.Join(logDir, fileName)
	}

	return SetLogFileWithPath(filePath)
}

// SetLogFileWithPath sets up logging to a specific file path.
// If a log file is already set, it will be replaced.
//
// Parameters:
//   - filePath: Full path to the log file (will be created if it doesn't exist)
//
// Returns an error if the log file cannot be created or opened.
//
// The file is opened in append mode, so new logs are added to the end if
// the file already exists.
func SetLogFileWithPath(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	logFile = filePath
	logFileDest = log.New(file, "", log.Ldate|log.Ltime)

	return nil
}

// GetLogFilePath returns the current log file path, or empty string if no log file is set.
func GetLogFilePath() string {
	mu.Lock()
	defer mu.Unlock()
	return logFile
}
