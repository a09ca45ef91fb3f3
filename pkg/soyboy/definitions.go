package soyboy

import (
	"fmt"

	"github.com/justyntemme/soyboy/pkg/dsp/envelope"
	"github.com/justyntemme/soyboy/pkg/framework/param"
)

// Plain ranges exposed to hosts
const (
	MaxAttackTime  = 2.0
	MaxDecayTime   = 2.0
	MaxReleaseTime = 5.0
)

// NewRegistry describes the instrument's parameters for hosts and editors:
// names, ranges, defaults and display formatting, keyed by Parameter id.
func NewRegistry() *param.Registry {
	r := param.NewRegistry()

	// ids are unique by construction
	_ = r.Add(
		param.New(MasterVolume.ID(), "Master Volume").
			ShortName("Vol").
			Range(0, 1).
			Default(DefaultMasterVolume).
			Unit("%").
			Formatter(param.PercentFormatter, param.PercentParser).
			Build(),
		param.New(AttackTime.ID(), "Attack").
			ShortName("A").
			Range(0, MaxAttackTime).
			Default(envelope.DefaultAttack).
			Unit("s").
			Formatter(param.TimeFormatter, param.TimeParser).
			Build(),
		param.New(DecayTime.ID(), "Decay").
			ShortName("D").
			Range(0, MaxDecayTime).
			Default(envelope.DefaultDecay).
			Unit("s").
			Formatter(param.TimeFormatter, param.TimeParser).
			Build(),
		param.New(Sustain.ID(), "Sustain").
			ShortName("S").
			Range(0, 1).
			Default(envelope.DefaultSustain).
			Unit("%").
			Formatter(param.PercentFormatter, param.PercentParser).
			Build(),
		param.New(ReleaseTime.ID(), "Release").
			ShortName("R").
			Range(0, MaxReleaseTime).
			Default(envelope.DefaultRelease).
			Unit("s").
			Formatter(param.TimeFormatter, param.TimeParser).
			Build(),
	)

	return r
}

// ApplyDefaults writes every definition's default into target. A
// definition whose id is not a Parameter is an error.
func ApplyDefaults(reg *param.Registry, target Parametric) error {
	for _, def := range reg.All() {
		p, err := ParameterFromID(def.ID)
		if err != nil {
			return fmt.Errorf("apply default %q: %w", def.Name, err)
		}
		target.SetParam(p, def.DefaultPlain())
	}
	return nil
}
