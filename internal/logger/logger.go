package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Observer receives formatted log lines, e.g. an operation-log view.
type Observer func(line string)

// Logger handles dual-output logging (console + file) plus optional
// observers for operation logs.
type Logger struct {
	consoleLogger *log.Logger
	fileLogger    *log.Logger
	logFile       *os.File
	verbose       bool
	minLevel      Level

	mu        sync.Mutex
	observers []Observer
}

var globalLogger *Logger

// Init initializes the global logger.
// consoleOutput: where INFO and above go (typically os.Stdout)
// logFilePath: file receiving every level with timestamps
// verbose: if true, DEBUG also reaches the console
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	minLevel := LevelInfo
	if verbose {
		minLevel = LevelDebug
	}

	globalLogger = &Logger{
		consoleLogger: log.New(consoleOutput, "", 0), // clean console output
		fileLogger:    log.New(logFile, "", log.LstdFlags),
		logFile:       logFile,
		verbose:       verbose,
		minLevel:      minLevel,
	}

	return nil
}

// Close closes the log file
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
	}
}

// Attach registers an observer that receives every console-visible log line.
// The background report jobs use this to feed the user-visible operation log.
func Attach(obs Observer) {
	if globalLogger == nil || obs == nil {
		return
	}
	globalLogger.mu.Lock()
	globalLogger.observers = append(globalLogger.observers, obs)
	globalLogger.mu.Unlock()
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, format, args...)
}

// Info logs an info message (console + file)
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.log(LevelInfo, format, args...)
}

// Warn logs a warning message (console + file)
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("WARN: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelWarn, format, args...)
}

// Error logs an error message (console + file)
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelError, format, args...)
}

// log handles the actual logging logic
func (l *Logger) log(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// The file gets everything regardless of minLevel
	l.fileLogger.Printf("[%s] %s", level.String(), message)

	if level < l.minLevel {
		return
	}

	switch level {
	case LevelDebug:
		l.consoleLogger.Printf("[DEBUG] %s", message)
	case LevelInfo:
		l.consoleLogger.Printf("%s", message)
	case LevelWarn:
		l.consoleLogger.Printf("⚠️  %s", message)
	case LevelError:
		l.consoleLogger.Printf("❌ %s", message)
	}

	l.notify(message)
}

func (l *Logger) notify(line string) {
	l.mu.Lock()
	observers := l.observers
	l.mu.Unlock()
	for _, obs := range observers {
		obs(line)
	}
}

// LogCellError records a per-cell parse problem in the log file only.
// This keeps the console clean while a load runs; the row detail stays in
// the file for later review.
func LogCellError(rowIndex int, err error, context string) {
	if globalLogger == nil {
		return
	}

	globalLogger.fileLogger.Printf("[CELL_ERROR] Row: %d, Context: %s, Error: %v", rowIndex, context, err)
	Debug("Cell error at row %d: %v", rowIndex, err)
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}
