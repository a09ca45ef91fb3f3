package soyboy

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/justyntemme/soyboy/pkg/framework/debug"
	"github.com/justyntemme/soyboy/pkg/framework/param"
	"github.com/justyntemme/soyboy/pkg/framework/process"
	"github.com/justyntemme/soyboy/pkg/midi"
)

// Processor adapts an Instrument to block-based hosts. It applies each
// block's events at their sample offsets, runs the instrument once per
// sample and writes the stereo result.
//
// The voice follows the last note: a note off only releases when it names
// the pitch that is currently held.
type Processor struct {
	inst       *Instrument
	params     *param.Registry
	controller *Controller
	logger     *debug.Logger

	sampleRate float64
	active     bool

	note     int16
	noteHeld bool

	rejected atomic.Uint64
}

// NewProcessor creates a processor around a fresh instrument with the
// registry defaults applied. A nil logger uses debug.Default().
func NewProcessor(logger *debug.Logger) *Processor {
	if logger == nil {
		logger = debug.Default()
	}

	inst := New()
	params := NewRegistry()
	if err := ApplyDefaults(params, inst); err != nil {
		// NewRegistry only defines Parameter ids
		panic(err)
	}

	return &Processor{
		inst:       inst,
		params:     params,
		controller: newController(inst, DefaultControllerCapacity),
		logger:     logger,
	}
}

// Instrument returns the voice being driven
func (p *Processor) Instrument() *Instrument {
	return p.inst
}

// Parameters returns the parameter definitions
func (p *Processor) Parameters() *param.Registry {
	return p.params
}

// Controller returns the handle used by control goroutines
func (p *Processor) Controller() *Controller {
	return p.controller
}

// Initialize is called before processing starts
func (p *Processor) Initialize(sampleRate float64, maxBlockSize int32) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return fmt.Errorf("invalid sample rate %v", sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("invalid block size %d", maxBlockSize)
	}
	p.sampleRate = sampleRate
	p.logger.Debug("initialized at %.0f Hz, max block %d", sampleRate, maxBlockSize)
	return nil
}

// SetActive is called when processing starts/stops. Deactivating silences
// the voice.
func (p *Processor) SetActive(active bool) {
	p.active = active
	if !active {
		p.inst.Reset()
		p.noteHeld = false
		p.reportRejected()
	}
}

// SampleRate returns the rate given to Initialize
func (p *Processor) SampleRate() float64 {
	return p.sampleRate
}

// SetParamNormalized applies a host value (0-1) to the parameter with the
// given id
func (p *Processor) SetParamNormalized(id uint32, normalized float64) error {
	def := p.params.Get(id)
	if def == nil {
		return &UnknownParameterError{ID: id}
	}
	return p.inst.SetParamID(id, def.Denormalize(normalized))
}

// ParamNormalized reads a parameter as a host value (0-1)
func (p *Processor) ParamNormalized(id uint32) (float64, error) {
	def := p.params.Get(id)
	if def == nil {
		return 0, &UnknownParameterError{ID: id}
	}
	plain, err := p.inst.ParamID(id)
	if err != nil {
		return 0, err
	}
	return def.Normalize(plain), nil
}

// HandleEvent applies one event immediately
func (p *Processor) HandleEvent(ev midi.Event) {
	switch e := ev.(type) {
	case midi.NoteOnEvent:
		p.inst.NoteOn(e.Pitch)
		p.note = e.Pitch
		p.noteHeld = true
	case midi.NoteOffEvent:
		if p.noteHeld && e.Pitch == p.note {
			p.inst.NoteOff()
			p.noteHeld = false
		}
	case midi.AllNotesOffEvent:
		p.inst.NoteOff()
		p.noteHeld = false
	case midi.ParamChangeEvent:
		if err := p.SetParamNormalized(e.ID, e.Value); err != nil {
			p.rejected.Add(1)
		}
	}
}

// ProcessAudio renders one block. It does not allocate or block.
func (p *Processor) ProcessAudio(ctx *process.Context) {
	p.controller.drain(p.HandleEvent)

	if !p.active || ctx.NumOutputChannels() == 0 {
		ctx.Clear()
		ctx.ClearInputEvents()
		return
	}

	sampleRate := ctx.SampleRate
	if !(sampleRate > 0) {
		sampleRate = p.sampleRate
	}

	events := ctx.InputEvents()
	next := 0
	left := ctx.Output[0]
	var right []float32
	if ctx.NumOutputChannels() > 1 {
		right = ctx.Output[1]
	}

	for i := range left {
		for next < len(events) && events[next].SampleOffset() <= int32(i) {
			p.HandleEvent(events[next])
			next++
		}

		s := p.inst.Process(sampleRate)
		left[i] = float32(s.Left)
		if i < len(right) {
			right[i] = float32(s.Right)
		}
	}

	// Events scheduled past the end of the block still apply
	for ; next < len(events); next++ {
		p.HandleEvent(events[next])
	}
	ctx.ClearInputEvents()
}

// GetTailSamples returns how long the voice can keep sounding after the
// last note off
func (p *Processor) GetTailSamples() int32 {
	release := p.inst.GetParam(ReleaseTime)
	if !(release > 0) {
		return 0
	}
	tail := release * p.sampleRate
	if tail > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(math.Ceil(tail))
}

// Rejected returns how many parameter events named an unknown id
func (p *Processor) Rejected() uint64 {
	return p.rejected.Load()
}

func (p *Processor) reportRejected() {
	if n := p.rejected.Load(); n > 0 {
		p.logger.Warn("%d parameter changes with unknown ids were ignored", n)
	}
	if n := p.controller.Dropped(); n > 0 {
		p.logger.Warn("%d note events dropped, control queue full", n)
	}
}
