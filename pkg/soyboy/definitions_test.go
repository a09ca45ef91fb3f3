package soyboy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/soyboy/pkg/framework/param"
)

func TestRegistryCoversEveryParameter(t *testing.T) {
	reg := NewRegistry()
	require.Equal(t, int32(len(Parameters())), reg.Count())

	for i, p := range Parameters() {
		def := reg.GetByIndex(int32(i))
		require.NotNil(t, def)
		assert.Equal(t, p.ID(), def.ID, "registry order follows Parameter ids")
		assert.True(t, def.Flags&param.CanAutomate != 0, "%s should be automatable", p)
	}
}

func TestRegistryDefaults(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		param Parameter
		min   float64
		max   float64
		plain float64
	}{
		{MasterVolume, 0, 1, 1.0},
		{AttackTime, 0, MaxAttackTime, 0.01},
		{DecayTime, 0, MaxDecayTime, 0.1},
		{Sustain, 0, 1, 0.7},
		{ReleaseTime, 0, MaxReleaseTime, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.param.String(), func(t *testing.T) {
			def := reg.Get(tt.param.ID())
			require.NotNil(t, def)
			assert.Equal(t, tt.min, def.Min)
			assert.Equal(t, tt.max, def.Max)
			assert.InDelta(t, tt.plain, def.DefaultPlain(), 1e-12)
		})
	}
}

func TestRegistryFormatting(t *testing.T) {
	reg := NewRegistry()

	vol := reg.Get(MasterVolume.ID())
	assert.Equal(t, "50%", vol.FormatValue(0.5))

	release := reg.Get(ReleaseTime.ID())
	assert.Equal(t, "2.50 s", release.FormatValue(0.5))
	assert.Equal(t, "100.0 ms", release.FormatValue(0.02))

	n, err := release.ParseValue("500ms")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, n, 1e-12)

	_, err = release.ParseValue("soon")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	inst := New()
	for _, p := range Parameters() {
		inst.SetParam(p, -1)
	}

	require.NoError(t, ApplyDefaults(NewRegistry(), inst))
	assert.InDelta(t, 0.7, inst.GetParam(Sustain), 1e-12)
	assert.InDelta(t, 0.3, inst.GetParam(ReleaseTime), 1e-12)
	assert.InDelta(t, 1.0, inst.GetParam(MasterVolume), 1e-12)
}

func TestApplyDefaultsRejectsForeignIDs(t *testing.T) {
	reg := param.NewRegistry()
	require.NoError(t, reg.Add(param.New(42, "Cutoff").Range(20, 20000).Default(1000).Build()))

	err := ApplyDefaults(reg, New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownParameter)

	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint32(42), unknown.ID)
}
