// Package logger provides a simple file-backed logger for backtest and
// optimization runs, following the session-file convention of the
// original trading-bot logger this package is adapted from.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level names one kind of log entry.
type Level string

const (
	LevelInfo       Level = "INFO"
	LevelWarning    Level = "WARN"
	LevelError      Level = "ERROR"
	LevelTrade      Level = "TRADE"
	LevelGeneration Level = "GENERATION"
	LevelDebug      Level = "DEBUG"
)

// Logger writes timestamped, leveled lines to a per-run log file under
// logDir, plus (optionally) stderr.
type Logger struct {
	runName  string
	logFile  *os.File
	logger   *log.Logger
	mu       sync.Mutex
	logDir   string
	debug    bool
	toStderr bool
}

// New creates a file logger for the given run name (e.g. a backtest
// symbol/interval pair, or an optimization job id).
func New(runName string) (*Logger, error) {
	return NewWithOptions(runName, "logs", false, true)
}

// NewWithOptions creates a file logger with explicit directory, debug, and
// stderr-mirroring control.
func NewWithOptions(runName, logDir string, debug, toStderr bool) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_%s.log", sanitize(runName), timestamp)
	logPath := filepath.Join(logDir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		runName:  runName,
		logFile:  file,
		logger:   log.New(file, "", 0),
		logDir:   logDir,
		debug:    debug,
		toStderr: toStderr,
	}
	l.writeSessionHeader()
	return l, nil
}

func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// Close flushes and closes the underlying log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logFile.Close()
}

func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(
		"================================================================================\n"+
			"RUN STARTED: %s\n"+
			"Started: %s\n"+
			"================================================================================",
		l.runName, time.Now().Format("2006-01-02 15:04:05"))
	l.logger.Println(header)
}

// Log writes one formatted entry at the given level.
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	if level == LevelDebug && !l.debug {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] [%s] %s", timestamp, level, fmt.Sprintf(format, args...))
	l.logger.Println(line)
	if l.toStderr {
		fmt.Fprintln(os.Stderr, line)
	}
}

func (l *Logger) Info(format string, args ...interface{})  { l.Log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.Log(LevelError, format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.Log(LevelDebug, format, args...) }
func (l *Logger) Trade(format string, args ...interface{}) { l.Log(LevelTrade, format, args...) }

// Generation logs one generation's best fitness and hall-of-fame size, the
// progress line an optimization CLI prints per iteration.
func (l *Logger) Generation(nr int, best float64, hallOfFameSize int) {
	l.Log(LevelGeneration, "gen=%d best_fitness=%.6f hall_of_fame=%d", nr, best, hallOfFameSize)
}

// PositionClosed logs one closed position's reason and realized quote
// delta, the per-trade line a backtest CLI prints as positions close.
func (l *Logger) PositionClosed(side string, reason string, quoteDelta float64) {
	l.Trade("side=%s reason=%s quote_delta=%.8f", side, reason, quoteDelta)
}
