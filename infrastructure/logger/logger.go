package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Level is the level at which a logger is configured. All messages sent
// to a level which is below the current level are filtered.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// levelStrs defines the human-readable names for each logging level.
var levelStrs = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

// LevelFromString returns a level based on the input string s. If the input
// can't be interpreted as a valid log level, the info level and false is
// returned.
func LevelFromString(s string) (l Level, ok bool) {
	switch strings.ToLower(s) {
	case "trace", "trc":
		return LevelTrace, true
	case "debug", "dbg":
		return LevelDebug, true
	case "info", "inf":
		return LevelInfo, true
	case "warn", "wrn":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "critical", "crt":
		return LevelCritical, true
	case "off":
		return LevelOff, true
	default:
		return LevelInfo, false
	}
}

// String returns the tag of the logger used in log messages, or "OFF" if
// the level will not produce any log output.
func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelStrs[l]
}

// Logger is a subsystem logger for a Backend.
type Logger struct {
	level     uint32 // level is the atomically-accessed current Level
	tag       string
	b         *Backend
	writeChan chan<- logEntry
}

// Trace formats message using the default formats for its operands and writes
// to log with LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	l.print(LevelTrace, args...)
}

// Tracef formats message according to format specifier and writes to
// log with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

// Debug formats message using the default formats for its operands and writes
// to log with LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	l.print(LevelDebug, args...)
}

// Debugf formats message according to format specifier and writes to
// log with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Info formats message using the default formats for its operands and writes
// to log with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.print(LevelInfo, args...)
}

// Infof formats message according to format specifier and writes to
// log with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// Warn formats message using the default formats for its operands and writes
// to log with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.print(LevelWarn, args...)
}

// Warnf formats message according to format specifier and writes to
// log with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Error formats message using the default formats for its operands and writes
// to log with LevelError.
func (l *Logger) Error(args ...interface{}) {
	l.print(LevelError, args...)
}

// Errorf formats message according to format specifier and writes to
// log with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// Critical formats message using the default formats for its operands and
// writes to log with LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	l.print(LevelCritical, args...)
}

// Criticalf formats message according to format specifier and writes to
// log with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32(&l.level, uint32(logLevel))
}

// Backend returns the backend this logger writes to.
func (l *Logger) Backend() *Backend {
	return l.b
}

func (l *Logger) print(logLevel Level, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.write(logLevel, fmt.Sprint(args...))
}

func (l *Logger) printf(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.write(logLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) write(logLevel Level, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	formatted := fmt.Sprintf("%s [%s] %s: %s\n", timestamp, logLevel, l.tag, message)
	if !l.b.IsRunning() {
		// The backend write loop isn't up yet. Don't lose the entry.
		_, _ = fmt.Fprint(os.Stderr, formatted)
		return
	}
	l.writeChan <- logEntry{log: []byte(formatted), level: logLevel}
}

// SubsystemTags is an enum of all supported subsystem tags.
var SubsystemTags = struct {
	POW,
	RTSM string
}{
	POW:  "POW",
	RTSM: "RTSM",
}

var (
	backendLog = NewBackend()

	subsystemLoggers      = make(map[string]*Logger)
	subsystemLoggersMutex sync.Mutex
)

// Get returns a logger of a specific subsystem. The returned boolean reports
// whether the tag is one of the registered SubsystemTags.
func Get(tag string) (logger *Logger, ok bool) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	logger, ok = subsystemLoggers[tag]
	if !ok {
		logger = backendLog.Logger(tag)
		logger.SetLevel(LevelInfo)
		subsystemLoggers[tag] = logger
		ok = true
	}
	return logger, ok
}

// BackendLog returns the backend log shared by all subsystem loggers.
func BackendLog() *Backend {
	return backendLog
}

// SetLogLevels sets the log level for all registered subsystems to the level
// described by the given string.
func SetLogLevels(logLevel string) error {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("invalid log level %s", logLevel)
	}
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
