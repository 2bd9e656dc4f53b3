package utils

import (
	"fmt"
	"os"
	"time"
)

func ExitErr(err error) {
	fmt.Printf("exit on error: %v\n", err)
	os.Exit(1)
}

func Measure(f func() error) (time.Duration, error) {
	t0 := time.Now()
	err := f()
	d := time.Since(t0)
	return d, err
}

func Rate(n int64, d time.Duration) float64 {
	return float64(n) / (float64(d) / float64(time.Second))
}

// ShowRate formats r events per second with a metric suffix.
func ShowRate(r float64, unit string) string {
	switch {
	case r > 1e9:
		return fmt.Sprintf("%.2f G%s/s", r/1e9, unit)
	case r > 1e6:
		return fmt.Sprintf("%.2f M%s/s", r/1e6, unit)
	case r > 1e3:
		return fmt.Sprintf("%.2f K%s/s", r/1e3, unit)
	default:
		return fmt.Sprintf("%.2f %s/s", r, unit)
	}
}

func pluralize(n int, singular, plural string) string {
	if n > 1 {
		return plural
	}
	return singular
}

func Pluralize(n int, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, pluralize(n, singular, plural))
}
