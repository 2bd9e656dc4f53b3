package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lsds/partitions/srcs/go/config"
)

type Level int32

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = map[string]Level{
	`DEBUG`: Debug,
	`INFO`:  Info,
	`WARN`:  Warn,
	`ERROR`: Error,
}

// ParseLevel accepts the level names in any case.
func ParseLevel(name string) (Level, error) {
	if l, ok := levelNames[strings.ToUpper(name)]; ok {
		return l, nil
	}
	return Info, fmt.Errorf("invalid log level %q", name)
}

const (
	ShowTimestamp = 1 << iota
)

type Logger struct {
	sync.Mutex
	w     io.Writer
	buf   []byte
	t0    time.Time
	level Level
	flags uint32
}

var std = newStd()

func newStd() *Logger {
	l := New(os.Stdout, Info)
	cfg, err := config.Load()
	if err != nil {
		l.Warnf("using default log config: %v", err)
		return l
	}
	if level, err := ParseLevel(cfg.LogLevel); err == nil {
		l.level = level
	} else {
		l.Warnf("%v", err)
	}
	if cfg.ShowTimestamp {
		l.flags |= ShowTimestamp
	}
	return l
}

func New(w io.Writer, level Level) *Logger {
	return &Logger{
		w:     w,
		t0:    time.Now(),
		level: level,
	}
}

func fmtDuration(d time.Duration) string {
	n := int64(d / time.Second)
	ss := n % 60
	n /= 60
	mm := n % 60
	n /= 60
	hh := n % 24
	n /= 24
	ms := float64(d%time.Second) / float64(time.Millisecond)
	return fmt.Sprintf("%dd %02d:%02d:%02d %6.2fms", n, hh, mm, ss, ms)
}

func (l *Logger) output(prefix, format string, v ...interface{}) {
	l.Lock()
	defer l.Unlock()
	l.buf = append(l.buf[:0], prefix...)
	if l.flags&ShowTimestamp != 0 {
		l.buf = append(l.buf, " ["...)
		l.buf = append(l.buf, fmtDuration(time.Since(l.t0))...)
		l.buf = append(l.buf, ']')
	}
	l.buf = append(l.buf, ' ')
	l.buf = fmt.Appendf(l.buf, format, v...)
	if n := len(l.buf); l.buf[n-1] != '\n' {
		l.buf = append(l.buf, '\n')
	}
	l.w.Write(l.buf)
}

func (l *Logger) logf(level Level, prefix, format string, v ...interface{}) {
	if level >= l.level {
		l.output(prefix, format, v...)
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(Debug, "[D]", format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(Info, "[I]", format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(Warn, "[W]", format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(Error, "[E]", format, v...)
}

func (l *Logger) Exitf(format string, v ...interface{}) {
	l.output("[F]", format, v...)
	os.Exit(1)
}

func (l *Logger) SetOutput(w io.Writer) {
	l.Lock()
	defer l.Unlock()
	l.w = w
}

func (l *Logger) SetLevel(level Level) {
	l.Lock()
	defer l.Unlock()
	l.level = level
}

func (l *Logger) SetFlags(fs ...uint32) {
	var flags uint32
	for _, f := range fs {
		flags |= f
	}
	l.Lock()
	defer l.Unlock()
	l.flags = flags
}

var (
	Debugf    = std.Debugf
	Infof     = std.Infof
	Warnf     = std.Warnf
	Errorf    = std.Errorf
	Exitf     = std.Exitf
	SetFlags  = std.SetFlags
	SetLevel  = std.SetLevel
	SetOutput = std.SetOutput
)
