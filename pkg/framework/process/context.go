// Package process provides the block processing context handed to an
// instrument by the host binding.
package process

import (
	"github.com/justyntemme/soyboy/pkg/midi"
)

// Context describes one block of audio to produce: the output buffers, the
// sample rate and the events that fall inside the block. It is owned by the
// goroutine that renders the block.
type Context struct {
	Output     [][]float32
	SampleRate float64

	events *midi.EventQueue
}

// NewContext creates a stereo context with pre-allocated buffers
func NewContext(maxBlockSize int, sampleRate float64) *Context {
	return &Context{
		Output: [][]float32{
			make([]float32, maxBlockSize),
			make([]float32, maxBlockSize),
		},
		SampleRate: sampleRate,
		events:     midi.NewEventQueue(),
	}
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	if len(c.Output) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumOutputChannels returns the number of output channels
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// Resize sets the block length, reusing the buffers when they are large
// enough
func (c *Context) Resize(numSamples int) {
	for ch := range c.Output {
		if cap(c.Output[ch]) < numSamples {
			c.Output[ch] = make([]float32, numSamples)
		}
		c.Output[ch] = c.Output[ch][:numSamples]
	}
}

// Clear zeros the output buffers
func (c *Context) Clear() {
	for ch := range c.Output {
		for i := range c.Output[ch] {
			c.Output[ch][i] = 0
		}
	}
}

// AddInputEvent schedules an event inside the current block
func (c *Context) AddInputEvent(event midi.Event) {
	c.events.Add(event)
}

// AddInputMIDI decodes a raw MIDI message and schedules it at offset. It
// reports false for messages the instrument does not handle.
func (c *Context) AddInputMIDI(raw []byte, offset int32) bool {
	ev, ok := midi.Decode(raw, offset)
	if !ok {
		return false
	}
	c.events.Add(ev)
	return true
}

// InputEvents returns the block's events ordered by sample offset
func (c *Context) InputEvents() []midi.Event {
	return c.events.Events()
}

// HasInputEvents reports whether any event is scheduled
func (c *Context) HasInputEvents() bool {
	return !c.events.IsEmpty()
}

// ClearInputEvents drops all scheduled events
func (c *Context) ClearInputEvents() {
	c.events.Clear()
}
