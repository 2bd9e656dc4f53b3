package utils

import (
	"errors"
	"testing"
	"time"
)

func Test_Measure(t *testing.T) {
	errFoo := errors.New("foo")
	d, err := Measure(func() error {
		time.Sleep(time.Millisecond)
		return errFoo
	})
	if err != errFoo || d < time.Millisecond {
		t.Errorf("unexpected result %v, %v", d, err)
	}
}

func Test_ShowRate(t *testing.T) {
	tests := []struct {
		r    float64
		want string
	}{
		{12, "12.00 op/s"},
		{2500, "2.50 Kop/s"},
		{3e6, "3.00 Mop/s"},
		{4.5e9, "4.50 Gop/s"},
	}
	for _, tt := range tests {
		if got := ShowRate(tt.r, "op"); got != tt.want {
			t.Errorf("ShowRate(%v): want %q, got %q", tt.r, tt.want, got)
		}
	}
	if got := Rate(10, 2*time.Second); got != 5 {
		t.Errorf("Rate: want 5, got %v", got)
	}
}

func Test_Pluralize(t *testing.T) {
	if got := Pluralize(1, "share", "shares"); got != "1 share" {
		t.Errorf("got %q", got)
	}
	if got := Pluralize(3, "share", "shares"); got != "3 shares" {
		t.Errorf("got %q", got)
	}
}
