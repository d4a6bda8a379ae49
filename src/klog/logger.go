package klog

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Haranmes/Ramen-os/src/fmtbuf"
)

// Sink receives complete, formatted lines. Sinks are fire and forget: they
// report nothing back and may drop output.
type Sink interface {
	WriteLine(color uint32, line string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(color uint32, line string)

func (f SinkFunc) WriteLine(color uint32, line string) { f(color, line) }

// Config is resolved once at boot and passed to New.
type Config struct {
	// Level is the least severe level emitted. The zero value emits all.
	Level Level
	// Debug selects debug behaviour: LevelDebug messages are emitted and
	// LevelWarn messages carry their source location.
	Debug bool
}

// DefaultConfig emits everything and follows the build configuration.
func DefaultConfig() Config {
	return Config{Level: LevelTrace, Debug: DebugBuild}
}

// Logger formats messages and fans them out to its sinks. Like the console
// it writes to, a Logger belongs to a single execution context.
type Logger struct {
	cfg   Config
	sinks []Sink
}

func New(cfg Config, sinks ...Sink) *Logger {
	return &Logger{cfg: cfg, sinks: sinks}
}

// AddSink registers another output, e.g. the console once the framebuffer
// is known.
func (l *Logger) AddSink(s Sink) {
	if s != nil {
		l.sinks = append(l.sinks, s)
	}
}

func (l *Logger) Config() Config { return l.cfg }

// Enabled reports whether a message at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	if level == LevelDebug && !l.cfg.Debug {
		return false
	}
	return level >= l.cfg.Level
}

// Logf emits one line at level. It returns fmtbuf.ErrOverflow when the
// formatted line does not fit in fmtbuf.Capacity bytes; the line is then
// dropped and no sink sees any part of it.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	return l.Output(2, level, format, args...)
}

// Output is Logf with an explicit call depth for the location annotation:
// 1 names the caller of Output.
func (l *Logger) Output(calldepth int, level Level, format string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}

	style := level.Style()
	var buf fmtbuf.Buffer
	if level.ShowLocation(l.cfg.Debug) {
		file, line := caller(calldepth + 1)
		if _, err := fmt.Fprintf(&buf, "[%s] %s:%d: ", style.Label, file, line); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(&buf, "[%s] ", style.Label); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(&buf, format, args...); err != nil {
		return err
	}

	text := buf.String()
	for _, s := range l.sinks {
		s.WriteLine(style.Color, text)
	}
	return nil
}

func (l *Logger) Tracef(format string, args ...any) error {
	return l.Output(2, LevelTrace, format, args...)
}

func (l *Logger) Debugf(format string, args ...any) error {
	return l.Output(2, LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...any) error {
	return l.Output(2, LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) error {
	return l.Output(2, LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) error {
	return l.Output(2, LevelError, format, args...)
}

func (l *Logger) Fatalf(format string, args ...any) error {
	return l.Output(2, LevelFatal, format, args...)
}

// Panicf only logs. Halting is up to the caller.
func (l *Logger) Panicf(format string, args ...any) error {
	return l.Output(2, LevelPanic, format, args...)
}

// caller returns "dir/file.go" and the line of the frame skip levels up.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	if i := strings.LastIndexByte(file, '/'); i > 0 {
		if j := strings.LastIndexByte(file[:i], '/'); j >= 0 {
			file = file[j+1:]
		}
	}
	return file, line
}
