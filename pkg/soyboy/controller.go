package soyboy

import (
	"sync/atomic"

	"github.com/justyntemme/soyboy/pkg/midi"
)

// DefaultControllerCapacity is the number of pending note events a
// Controller buffers between two audio blocks.
const DefaultControllerCapacity = 256

// Controller hands note events from a control goroutine (keyboard, GUI,
// MIDI input) to the audio goroutine without blocking either side.
// Parameter writes bypass the queue and land directly in the instrument's
// lock-free cells.
type Controller struct {
	events  chan midi.Event
	inst    *Instrument
	dropped atomic.Uint64
}

func newController(inst *Instrument, capacity int) *Controller {
	if capacity <= 0 {
		capacity = DefaultControllerCapacity
	}
	return &Controller{
		events: make(chan midi.Event, capacity),
		inst:   inst,
	}
}

// Send queues an event for the next audio block. It returns false and
// counts a drop when the queue is full.
func (c *Controller) Send(ev midi.Event) bool {
	select {
	case c.events <- ev:
		return true
	default:
		c.dropped.Add(1)
		return false
	}
}

// SendMIDI decodes a raw MIDI message and queues it. It returns false when
// the message is not handled or the queue is full.
func (c *Controller) SendMIDI(raw []byte) bool {
	ev, ok := midi.Decode(raw, 0)
	if !ok {
		return false
	}
	return c.Send(ev)
}

// NoteOn queues a note on
func (c *Controller) NoteOn(pitch int16) bool {
	return c.Send(midi.NoteOnEvent{Pitch: pitch, Velocity: 127})
}

// NoteOff queues a note off for pitch
func (c *Controller) NoteOff(pitch int16) bool {
	return c.Send(midi.NoteOffEvent{Pitch: pitch})
}

// AllNotesOff queues a release of whatever is sounding
func (c *Controller) AllNotesOff() bool {
	return c.Send(midi.AllNotesOffEvent{})
}

// SetParam writes a tunable immediately
func (c *Controller) SetParam(p Parameter, value float64) {
	c.inst.SetParam(p, value)
}

// GetParam reads a tunable
func (c *Controller) GetParam(p Parameter) float64 {
	return c.inst.GetParam(p)
}

// Dropped returns how many events were refused because the queue was full
func (c *Controller) Dropped() uint64 {
	return c.dropped.Load()
}

// drain hands every pending event to fn without blocking
func (c *Controller) drain(fn func(midi.Event)) {
	for {
		select {
		case ev := <-c.events:
			fn(ev)
		default:
			return
		}
	}
}

var _ Parametric = (*Controller)(nil)
