// Package envelope provides the ADSR envelope generator of the voice
package envelope

import (
	"math"

	"github.com/justyntemme/soyboy/pkg/framework/param"
)

// Stage represents the current envelope stage
type Stage int

const (
	// StageIdle represents envelope idle state
	StageIdle Stage = iota
	// StageAttack represents envelope attack phase
	StageAttack
	// StageDecay represents envelope decay phase
	StageDecay
	// StageSustain represents envelope sustain phase
	StageSustain
	// StageRelease represents envelope release phase
	StageRelease
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "Idle"
	case StageAttack:
		return "Attack"
	case StageDecay:
		return "Decay"
	case StageSustain:
		return "Sustain"
	case StageRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// Default tunables
const (
	DefaultAttack  = 0.01
	DefaultDecay   = 0.1
	DefaultSustain = 0.7
	DefaultRelease = 0.3
)

// Generator implements a linear Attack-Decay-Sustain-Release envelope.
//
// The tunables live in lock-free cells and may be written from any
// goroutine. Stage, elapsed time and level belong to the goroutine calling
// Process and SetStage.
type Generator struct {
	// Parameters (in seconds for A,D,R and 0-1 for S)
	attack  param.Value
	decay   param.Value
	sustain param.Value
	release param.Value

	// State
	stage        Stage
	elapsed      float64 // seconds spent in the current stage
	level        float64
	releaseLevel float64 // level when the release stage was entered
}

// New creates an idle envelope with default tunables
func New() *Generator {
	g := &Generator{}
	g.attack.Store(DefaultAttack)
	g.decay.Store(DefaultDecay)
	g.sustain.Store(DefaultSustain)
	g.release.Store(DefaultRelease)
	return g
}

// SetAttack sets the attack time in seconds. The value is stored as given.
func (g *Generator) SetAttack(seconds float64) { g.attack.Store(seconds) }

// SetDecay sets the decay time in seconds
func (g *Generator) SetDecay(seconds float64) { g.decay.Store(seconds) }

// SetSustain sets the sustain level
func (g *Generator) SetSustain(level float64) { g.sustain.Store(level) }

// SetRelease sets the release time in seconds
func (g *Generator) SetRelease(seconds float64) { g.release.Store(seconds) }

// Attack returns the stored attack time
func (g *Generator) Attack() float64 { return g.attack.Load() }

// Decay returns the stored decay time
func (g *Generator) Decay() float64 { return g.decay.Load() }

// Sustain returns the stored sustain level
func (g *Generator) Sustain() float64 { return g.sustain.Load() }

// Release returns the stored release time
func (g *Generator) Release() float64 { return g.release.Load() }

// AttackCell exposes the attack cell for table-driven parameter dispatch
func (g *Generator) AttackCell() *param.Value { return &g.attack }

// DecayCell exposes the decay cell
func (g *Generator) DecayCell() *param.Value { return &g.decay }

// SustainCell exposes the sustain cell
func (g *Generator) SustainCell() *param.Value { return &g.sustain }

// ReleaseCell exposes the release cell
func (g *Generator) ReleaseCell() *param.Value { return &g.release }

// SetStage forces a stage transition.
//
// StageAttack always restarts the attack ramp from zero, retriggering a
// sounding note. StageRelease starts the release ramp from the current
// level; it is ignored while idle or already releasing. StageIdle silences
// the envelope immediately.
func (g *Generator) SetStage(stage Stage) {
	switch stage {
	case StageRelease:
		if g.stage == StageIdle || g.stage == StageRelease {
			return
		}
		g.releaseLevel = g.level
	case StageIdle:
		g.level = 0
	case StageAttack, StageDecay, StageSustain:
	default:
		return
	}
	g.stage = stage
	g.elapsed = 0
}

// Trigger starts the envelope (note on)
func (g *Generator) Trigger() {
	g.SetStage(StageAttack)
}

// NoteOff starts the release stage
func (g *Generator) NoteOff() {
	g.SetStage(StageRelease)
}

// Reset immediately returns the envelope to idle
func (g *Generator) Reset() {
	g.SetStage(StageIdle)
}

// Stage returns the current envelope stage
func (g *Generator) Stage() Stage {
	return g.stage
}

// Level returns the most recently produced level
func (g *Generator) Level() float64 {
	return g.level
}

// IsActive returns true if the envelope is generating output
func (g *Generator) IsActive() bool {
	return g.stage != StageIdle
}

// Process advances the envelope by one sample period and returns the level.
//
// Every stage whose duration has elapsed completes within the same call,
// with the remaining time carried into the next stage, so zero-length
// stages are instantaneous. A sample rate that is not a positive finite
// number, or so small that one sample period is infinite, does not advance
// time.
func (g *Generator) Process(sampleRate float64) float64 {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return g.level
	}
	step := 1.0 / sampleRate
	if math.IsInf(step, 1) {
		return g.level
	}
	if g.stage == StageIdle {
		g.level = 0
		return 0
	}

	g.elapsed += step

	for {
		switch g.stage {
		case StageAttack:
			attack := stageTime(g.attack.Load())
			if g.elapsed >= attack {
				g.elapsed -= attack
				g.stage = StageDecay
				g.level = 1
				continue
			}
			g.level = g.elapsed / attack

		case StageDecay:
			decay := stageTime(g.decay.Load())
			sustain := unitLevel(g.sustain.Load())
			if g.elapsed >= decay {
				g.elapsed = 0
				g.stage = StageSustain
				g.level = sustain
				continue
			}
			g.level = 1 - (1-sustain)*g.elapsed/decay

		case StageSustain:
			g.elapsed = 0
			g.level = unitLevel(g.sustain.Load())

		case StageRelease:
			release := stageTime(g.release.Load())
			if g.elapsed >= release {
				g.elapsed = 0
				g.stage = StageIdle
				g.level = 0
				break
			}
			g.level = g.releaseLevel * (1 - g.elapsed/release)

		case StageIdle:
			g.level = 0
		}

		g.level = unitLevel(g.level)
		return g.level
	}
}

// ProcessMultiply multiplies buffer by envelope - no allocations
func (g *Generator) ProcessMultiply(buffer []float32, sampleRate float64) {
	for i := range buffer {
		buffer[i] *= float32(g.Process(sampleRate))
	}
}

// stageTime treats negative and NaN durations as zero
func stageTime(seconds float64) float64 {
	if !(seconds > 0) {
		return 0
	}
	return seconds
}

// unitLevel clamps a level into [0,1], mapping NaN to 0
func unitLevel(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
