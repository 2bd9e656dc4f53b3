package log

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func Test_ParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", Debug},
		{"INFO", Info},
		{"Warn", Warn},
		{"error", Error},
	}
	for _, tt := range tests {
		if got, err := ParseLevel(tt.name); err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q): want %d, got %d (%v)", tt.name, tt.want, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("expect error for unknown level")
	}
}

func Test_Logger_level(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, Warn)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d\n", 4)
	const want = "[W] shown 3\n[E] shown 4\n"
	if got := b.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func Test_Logger_timestamp(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, Debug)
	l.SetFlags(ShowTimestamp)
	l.Debugf("x")
	if got := b.String(); !strings.HasPrefix(got, "[D] [0d 00:00:00") || !strings.HasSuffix(got, "] x\n") {
		t.Errorf("unexpected line %q", got)
	}
}

func Test_fmtDuration(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 4*time.Second + 1500*time.Microsecond
	const want = "1d 02:03:04   1.50ms"
	if got := fmtDuration(d); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
