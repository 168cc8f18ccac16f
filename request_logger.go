package outbound

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// RequestLogger is the interface used by [Client] for logging requests and
// errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger]. It is also handed
// to resty, so transport-level warnings end up in the same place.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Infof(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Infof(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// Level is a logging threshold. Messages above the threshold are dropped.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return strconv.Itoa(int(l))
	}
}

func ParseLevel(text string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "OFF", "NONE":
		return LevelOff, nil
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	}

	return LevelError, fmt.Errorf("unknown log level: %q", text)
}

// LevelLogger is a [RequestLogger] writing prefixed lines for every message
// at or below its threshold.
type LevelLogger struct {
	level  Level
	logger *log.Logger
}

func NewLevelLogger(w io.Writer, level Level) *LevelLogger {
	return &LevelLogger{
		level:  level,
		logger: log.New(w, "Outbound ", log.LstdFlags),
	}
}

func (l *LevelLogger) Level() Level { return l.level }

func (l *LevelLogger) Errorf(format string, v ...any) { l.logf(LevelError, format, v...) }
func (l *LevelLogger) Warnf(format string, v ...any)  { l.logf(LevelWarn, format, v...) }
func (l *LevelLogger) Infof(format string, v ...any)  { l.logf(LevelInfo, format, v...) }
func (l *LevelLogger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v...) }

func (l *LevelLogger) logf(level Level, format string, v ...any) {
	if level > l.level {
		return
	}

	l.logger.Printf("["+level.String()+"] "+strings.TrimRight(format, "\n"), v...)
}
