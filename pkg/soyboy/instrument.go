// Package soyboy implements a monophonic square wave voice in the style of a
// handheld game console sound channel.
package soyboy

import (
	"github.com/justyntemme/soyboy/pkg/dsp/envelope"
	"github.com/justyntemme/soyboy/pkg/dsp/oscillator"
	"github.com/justyntemme/soyboy/pkg/framework/param"
)

// DefaultMasterVolume is the gain of a new instrument
const DefaultMasterVolume = 1.0

// Signal is one stereo output frame
type Signal struct {
	Left  float64
	Right float64
}

// Instrument is a single voice: one square oscillator shaped by one ADSR
// envelope and scaled by a master volume, emitted centered on both
// channels.
//
// NoteOn, NoteOff and Process must be serialized by the caller (normally
// they all run on the audio goroutine, see Processor). SetParam and
// GetParam may be called from any goroutine.
type Instrument struct {
	osc          *oscillator.Square
	env          *envelope.Generator
	masterVolume param.Value
}

// New creates an idle instrument with default tunables
func New() *Instrument {
	i := &Instrument{
		osc: oscillator.NewSquare(),
		env: envelope.New(),
	}
	i.masterVolume.Store(DefaultMasterVolume)
	return i
}

// cells maps each Parameter to the storage it drives
var cells = [numParameters]func(*Instrument) *param.Value{
	MasterVolume: func(i *Instrument) *param.Value { return &i.masterVolume },
	AttackTime:   func(i *Instrument) *param.Value { return i.env.AttackCell() },
	DecayTime:    func(i *Instrument) *param.Value { return i.env.DecayCell() },
	Sustain:      func(i *Instrument) *param.Value { return i.env.SustainCell() },
	ReleaseTime:  func(i *Instrument) *param.Value { return i.env.ReleaseCell() },
}

// NoteOn retunes the oscillator and restarts the envelope from attack
func (i *Instrument) NoteOn(pitch int16) {
	i.osc.SetPitch(pitch)
	i.env.SetStage(envelope.StageAttack)
}

// NoteOff moves the envelope into release
func (i *Instrument) NoteOff() {
	i.env.SetStage(envelope.StageRelease)
}

// Process produces one output frame and advances both the oscillator and
// the envelope by one sample. It never blocks or allocates.
func (i *Instrument) Process(sampleRate float64) Signal {
	osc := i.osc.Process(sampleRate)
	env := i.env.Process(sampleRate)

	signal := osc * env * i.masterVolume.Load()
	return Signal{Left: signal, Right: signal}
}

// SetParam writes a tunable. Invalid parameters are ignored.
func (i *Instrument) SetParam(p Parameter, value float64) {
	if !p.Valid() {
		return
	}
	cells[p](i).Store(value)
}

// GetParam reads a tunable back. Invalid parameters read as 0.
func (i *Instrument) GetParam(p Parameter) float64 {
	if !p.Valid() {
		return 0
	}
	return cells[p](i).Load()
}

// SetParamID writes a tunable addressed by host id
func (i *Instrument) SetParamID(id uint32, value float64) error {
	p, err := ParameterFromID(id)
	if err != nil {
		return err
	}
	i.SetParam(p, value)
	return nil
}

// ParamID reads a tunable addressed by host id
func (i *Instrument) ParamID(id uint32) (float64, error) {
	p, err := ParameterFromID(id)
	if err != nil {
		return 0, err
	}
	return i.GetParam(p), nil
}

// Stage returns the envelope stage
func (i *Instrument) Stage() envelope.Stage {
	return i.env.Stage()
}

// Active reports whether the voice is producing sound
func (i *Instrument) Active() bool {
	return i.env.IsActive()
}

// Frequency returns the oscillator frequency in Hz
func (i *Instrument) Frequency() float64 {
	return i.osc.Frequency()
}

// Reset silences the voice and rewinds the oscillator
func (i *Instrument) Reset() {
	i.env.Reset()
	i.osc.Reset()
}

var _ Parametric = (*Instrument)(nil)
