package param

import (
	"math"
	"sync/atomic"
)

// Value is a float64 cell that can be written from a control goroutine and
// read from the audio goroutine without locking.
type Value struct {
	bits atomic.Uint64
}

// NewValue returns a cell holding v.
func NewValue(v float64) *Value {
	c := &Value{}
	c.Store(v)
	return c
}

// Load returns the stored value.
func (c *Value) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Store replaces the stored value. No clamping is applied.
func (c *Value) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
}
