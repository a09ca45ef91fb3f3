// Package oscillator provides the square wave oscillator of the voice
package oscillator

import "math"

const (
	// ReferencePitch is the note number that sounds at ReferenceFrequency (A4)
	ReferencePitch = 69
	// ReferenceFrequency is the tuning of ReferencePitch in Hz
	ReferenceFrequency = 440.0

	// MinFrequency and MaxFrequency bound PitchToFrequency so that any
	// int16 pitch yields a finite, positive frequency.
	MinFrequency = 1e-3
	MaxFrequency = 1e6
)

// PitchToFrequency maps a note number to Hz using twelve-tone equal
// temperament: 440 * 2^((pitch-69)/12).
func PitchToFrequency(pitch int16) float64 {
	freq := ReferenceFrequency * math.Exp2(float64(int32(pitch)-ReferencePitch)/12.0)
	if freq < MinFrequency {
		return MinFrequency
	}
	if freq > MaxFrequency {
		return MaxFrequency
	}
	return freq
}

// validSampleRate reports whether sampleRate can drive the phase clock
func validSampleRate(sampleRate float64) bool {
	return sampleRate > 0 && !math.IsInf(sampleRate, 1)
}

// Square generates a fixed 50% duty cycle square wave.
// Phase is kept in [0,1) and advanced once per Process call.
type Square struct {
	frequency float64
	phase     float64
}

// NewSquare creates a square oscillator tuned to A4
func NewSquare() *Square {
	return &Square{
		frequency: ReferenceFrequency,
	}
}

// SetPitch retunes the oscillator. The new frequency applies from the next
// sample; there is no glide and the phase is kept.
func (o *Square) SetPitch(pitch int16) {
	o.frequency = PitchToFrequency(pitch)
}

// Frequency returns the current frequency in Hz
func (o *Square) Frequency() float64 {
	return o.frequency
}

// Phase returns the current phase (0-1)
func (o *Square) Phase() float64 {
	return o.phase
}

// Reset resets the oscillator phase to 0
func (o *Square) Reset() {
	o.phase = 0.0
}

// Process returns the sample for the current phase, +1 in the first half of
// the cycle and -1 in the second, then advances the phase by
// frequency/sampleRate. A sample rate that is not a positive finite number,
// or so small that the phase step overflows, yields 0 and leaves the phase
// untouched.
func (o *Square) Process(sampleRate float64) float64 {
	if !validSampleRate(sampleRate) {
		return 0
	}
	step := o.frequency / sampleRate
	if math.IsInf(step, 1) {
		return 0
	}

	sample := -1.0
	if o.phase < 0.5 {
		sample = 1.0
	}

	o.phase += step
	if o.phase >= 1.0 {
		o.phase -= math.Floor(o.phase)
		// Rounding can leave exactly 1.0 behind
		if o.phase >= 1.0 {
			o.phase = 0
		}
	}

	return sample
}

// ProcessBuffer fills buffer with square wave samples - no allocations
func (o *Square) ProcessBuffer(buffer []float32, sampleRate float64) {
	for i := range buffer {
		buffer[i] = float32(o.Process(sampleRate))
	}
}
