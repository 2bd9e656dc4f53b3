// Package partition splits a quantity n into m shares that are as equal as
// possible and sum back to n, one share at a time.
package partition

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/lsds/partitions/srcs/go/utils/assert"
	"golang.org/x/exp/constraints"
)

// Number is the numeric domain a quantity can be partitioned in.
type Number interface {
	constraints.Integer | constraints.Float
}

type State int

const (
	Active State = iota
	Exhausted
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Generator produces shares until it is exhausted.
type Generator[T any] interface {
	Next() (T, bool)
}

// Sized is a Generator that knows how many shares are left.
type Sized[T any] interface {
	Generator[T]
	Len() int
}

// Partitions yields the shares of total over count.
// Each share is the remaining total divided by the remaining count, so the
// truncation of earlier shares is absorbed by later ones.
type Partitions[T Number] struct {
	total T
	count T
}

var ErrInvalid = errors.New("invalid partition")

// Check reports whether New accepts n and m: n >= m, m >= 0, m > 0 whenever
// n != 0, n finite, and m small enough that subtracting one from it is exact,
// which bounds a float count by the width of its mantissa.
func Check[T Number](n, m T) error {
	var zero T
	one := T(1)
	switch {
	case !(n >= m): // NaN too
		return fmt.Errorf("%w: %v into %v shares", ErrInvalid, n, m)
	case m < zero:
		return fmt.Errorf("%w: negative share count %v", ErrInvalid, m)
	case m == zero && n != zero:
		return fmt.Errorf("%w: %v into zero shares", ErrInvalid, n)
	case n-n != zero:
		return fmt.Errorf("%w: non-finite total %v", ErrInvalid, n)
	case m >= one && (m-one == m || m-one+one != m):
		return fmt.Errorf("%w: share count %v cannot be counted down exactly", ErrInvalid, m)
	}
	return nil
}

// New panics unless Check(n, m) passes.
func New[T Number](n, m T) *Partitions[T] {
	assert.OK(Check(n, m))
	return &Partitions[T]{total: n, count: m}
}

func (p *Partitions[T]) State() State {
	var zero T
	if p.total <= zero {
		return Exhausted
	}
	return Active
}

func (p *Partitions[T]) Exhausted() bool { return p.State() == Exhausted }

// Next returns the next share, or false once the total has been handed out.
// The count drops by exactly one per call and the last share takes the whole
// remaining total, so the total reaches zero after ceil(m) calls. Clamping a
// negative total is only a backstop for that.
func (p *Partitions[T]) Next() (T, bool) {
	var zero T
	if p.State() == Exhausted {
		return zero, false
	}
	one := T(1)
	share := p.total
	if p.count > one {
		share = p.total / p.count
	}
	p.total -= share
	p.count -= one
	if p.total < zero {
		p.total = zero
	}
	return share, true
}

// All adapts p to a range loop. Shares consumed by the loop are gone from p.
func (p *Partitions[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Counted is Partitions over an integer domain, where the number of
// remaining shares is known exactly.
type Counted[T constraints.Integer] struct {
	Partitions[T]
}

// NewCounted panics unless Check(n, m) passes and m fits in an int.
func NewCounted[T constraints.Integer](n, m T) *Counted[T] {
	p := New(n, m)
	assert.Truef(uint64(m) <= math.MaxInt, "share count %v overflows int", m)
	return &Counted[T]{Partitions: *p}
}

// Len is the number of successful Next calls left.
func (c *Counted[T]) Len() int { return int(c.count) }

// Sum drains g and adds up its shares in order.
func Sum[T Number](g Generator[T]) T {
	var s T
	for {
		v, ok := g.Next()
		if !ok {
			return s
		}
		s += v
	}
}

// Collect drains g into a slice.
func Collect[T any](g Generator[T]) []T {
	var vs []T
	if s, ok := g.(Sized[T]); ok {
		vs = make([]T, 0, s.Len())
	}
	for {
		v, ok := g.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}
