package main

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/lsds/partitions/srcs/go/log"
	"github.com/lsds/partitions/srcs/go/partition"
	"github.com/lsds/partitions/srcs/go/utils"
	"golang.org/x/exp/constraints"
)

var (
	total  = flag.String("n", "739845", "quantity to partition")
	shares = flag.String("m", "192873", "number of shares")
	dtype  = flag.String("dtype", "int", "int | uint | f32 | f64")
	repeat = flag.Int("repeat", 10, "")
)

func main() {
	flag.Parse()
	if err := run(*dtype, *total, *shares, *repeat); err != nil {
		utils.ExitErr(err)
	}
}

func run(dtype, n, m string, repeat int) error {
	switch dtype {
	case "int":
		return benchIntegers(strconv.ParseInt, n, m, repeat)
	case "uint":
		return benchIntegers(strconv.ParseUint, n, m, repeat)
	case "f32":
		return benchFloats[float32](n, m, 32, repeat)
	case "f64":
		return benchFloats[float64](n, m, 64, repeat)
	}
	return fmt.Errorf("invalid dtype: %s", dtype)
}

func parsePair[T any](parse func(string) (T, error), n, m string) (T, T, error) {
	var zero T
	x, err := parse(n)
	if err != nil {
		return zero, zero, fmt.Errorf("parse n: %w", err)
	}
	y, err := parse(m)
	if err != nil {
		return zero, zero, fmt.Errorf("parse m: %w", err)
	}
	return x, y, nil
}

func benchIntegers[T int64 | uint64](parseInt func(string, int, int) (T, error), n, m string, repeat int) error {
	x, y, err := parsePair(func(s string) (T, error) { return parseInt(s, 10, 64) }, n, m)
	if err != nil {
		return err
	}
	if err := partition.Check(x, y); err != nil {
		return err
	}
	return bench(repeat, int64(y), func() error { return checkIntegers(x, y) })
}

func checkIntegers[T constraints.Integer](n, m T) error {
	p := partition.NewCounted(n, m)
	want := p.Len()
	var sum T
	var count int
	for v := range p.All() {
		sum += v
		count++
	}
	if sum != n || count != want {
		return fmt.Errorf("got sum %d over %s, want %d over %d", sum, utils.Pluralize(count, "share", "shares"), n, want)
	}
	return nil
}

func benchFloats[T constraints.Float](n, m string, bitSize int, repeat int) error {
	x, y, err := parsePair(func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		return T(v), err
	}, n, m)
	if err != nil {
		return err
	}
	if err := partition.Check(x, y); err != nil {
		return err
	}
	tol := 1e-9
	if bitSize == 32 {
		tol = 1e-2
	}
	count := int64(math.Ceil(float64(y)))
	return bench(repeat, count, func() error { return checkFloats(x, y, tol) })
}

// checkFloats accumulates in float64 so that only the partitioning error is
// measured, within tol relative to n.
func checkFloats[T constraints.Float](n, m T, tol float64) error {
	var sum float64
	for v := range partition.New(n, m).All() {
		sum += float64(v)
	}
	if math.Abs(sum-float64(n)) > tol*math.Max(1, math.Abs(float64(n))) {
		return fmt.Errorf("got sum %v, want %v", sum, n)
	}
	return nil
}

func bench(repeat int, shares int64, f func() error) error {
	var took time.Duration
	for i := 0; i < repeat; i++ {
		d, err := utils.Measure(f)
		if err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		log.Debugf("round %d took %s", i, d)
		took += d
	}
	log.Infof("%s of %s took %s, %s", utils.Pluralize(repeat, "round", "rounds"),
		utils.Pluralize(int(shares), "share", "shares"), took,
		utils.ShowRate(utils.Rate(shares*int64(repeat), took), "share"))
	return nil
}
