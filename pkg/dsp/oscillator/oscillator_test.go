package oscillator

import (
	"math"
	"testing"
)

func TestPitchToFrequency(t *testing.T) {
	tests := []struct {
		name  string
		pitch int16
		want  float64
	}{
		{"A4 reference", 69, 440.0},
		{"A5 octave up", 81, 880.0},
		{"A3 octave down", 57, 220.0},
		{"Middle C", 60, 261.6256},
		{"Note zero", 0, 8.1758},
		{"Negative pitch", -12, 4.0879},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PitchToFrequency(tt.pitch)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("PitchToFrequency(%d) = %f, want %f", tt.pitch, got, tt.want)
			}
		})
	}
}

func TestPitchToFrequencyExtremes(t *testing.T) {
	for _, pitch := range []int16{math.MinInt16, -1000, 1000, math.MaxInt16} {
		freq := PitchToFrequency(pitch)
		if freq <= 0 || math.IsInf(freq, 0) || math.IsNaN(freq) {
			t.Errorf("PitchToFrequency(%d) = %f, want finite positive", pitch, freq)
		}
		if freq < MinFrequency || freq > MaxFrequency {
			t.Errorf("PitchToFrequency(%d) = %f outside [%f, %f]", pitch, freq, MinFrequency, MaxFrequency)
		}
	}
}

// halfCycleLengths returns the lengths of runs of equal samples, skipping
// the first (possibly partial) run.
func halfCycleLengths(osc *Square, sampleRate float64, samples int) []int {
	var runs []int
	prev := osc.Process(sampleRate)
	run := 1
	first := true
	for i := 1; i < samples; i++ {
		s := osc.Process(sampleRate)
		if s == prev {
			run++
			continue
		}
		if !first {
			runs = append(runs, run)
		}
		first = false
		prev = s
		run = 1
	}
	return runs
}

func TestSquarePeriod(t *testing.T) {
	sampleRates := []float64{22050, 44100, 48000, 96000}
	pitches := []int16{33, 45, 57, 69, 81, 93}

	for _, sr := range sampleRates {
		for _, pitch := range pitches {
			osc := NewSquare()
			osc.SetPitch(pitch)

			period := sr / osc.Frequency()
			runs := halfCycleLengths(osc, sr, int(period*6))
			if len(runs) < 4 {
				t.Fatalf("sr=%v pitch=%d: too few transitions (%d)", sr, pitch, len(runs))
			}

			for i := 0; i+1 < len(runs); i += 2 {
				full := float64(runs[i] + runs[i+1])
				if math.Abs(full-period) > 1.0 {
					t.Errorf("sr=%v pitch=%d: cycle of %v samples, want %v±1", sr, pitch, full, period)
				}
			}
		}
	}
}

func TestSquareOutputValues(t *testing.T) {
	osc := NewSquare()
	osc.SetPitch(69)

	for i := 0; i < 1000; i++ {
		s := osc.Process(44100)
		if s != 1 && s != -1 {
			t.Fatalf("sample %d = %f, want ±1", i, s)
		}
		if p := osc.Phase(); p < 0 || p >= 1 {
			t.Fatalf("phase %f escaped [0,1)", p)
		}
	}
}

func TestSquareFirstHalfIsPositive(t *testing.T) {
	osc := NewSquare()
	osc.SetPitch(69) // 440 Hz, ~100.2 samples per cycle at 44.1k

	for i := 0; i <= 50; i++ {
		if s := osc.Process(44100); s != 1 {
			t.Fatalf("sample %d = %f, want +1", i, s)
		}
	}
	if s := osc.Process(44100); s != -1 {
		t.Errorf("sample 51 = %f, want -1", s)
	}
}

func TestSquareHighFrequencyWraps(t *testing.T) {
	osc := NewSquare()
	osc.SetPitch(math.MaxInt16) // clamps to MaxFrequency, far above any sample rate

	for i := 0; i < 100; i++ {
		osc.Process(44100)
		if p := osc.Phase(); p < 0 || p >= 1 || math.IsNaN(p) {
			t.Fatalf("phase %f escaped [0,1)", p)
		}
	}
}

func TestSquareInvalidSampleRate(t *testing.T) {
	for _, sr := range []float64{0, -44100, math.NaN(), math.Inf(1), math.Inf(-1)} {
		osc := NewSquare()
		osc.Process(44100)
		phase := osc.Phase()

		if s := osc.Process(sr); s != 0 {
			t.Errorf("Process(%v) = %f, want 0", sr, s)
		}
		if osc.Phase() != phase {
			t.Errorf("Process(%v) moved phase from %f to %f", sr, phase, osc.Phase())
		}
	}
}

func TestSetPitchKeepsPhase(t *testing.T) {
	osc := NewSquare()
	for i := 0; i < 10; i++ {
		osc.Process(48000)
	}
	phase := osc.Phase()
	osc.SetPitch(72)
	if osc.Phase() != phase {
		t.Error("SetPitch must not reset phase")
	}
	osc.Reset()
	if osc.Phase() != 0 {
		t.Error("Reset should zero the phase")
	}
}

func TestProcessBufferNoAllocation(t *testing.T) {
	osc := NewSquare()
	buf := make([]float32, 512)
	allocs := testing.AllocsPerRun(100, func() {
		osc.ProcessBuffer(buf, 44100)
	})
	if allocs != 0 {
		t.Errorf("ProcessBuffer allocated %v times per run", allocs)
	}
}

func TestSquareTinySampleRateKeepsPhase(t *testing.T) {
	osc := NewSquare()
	osc.SetPitch(127)
	osc.Process(44100)
	phase := osc.Phase()

	if v := osc.Process(5e-324); v != 0 {
		t.Errorf("Process(5e-324) = %f, want 0", v)
	}
	if osc.Phase() != phase {
		t.Fatalf("phase moved to %v on an overflowing step", osc.Phase())
	}
	osc.Process(44100)
	if p := osc.Phase(); math.IsNaN(p) || p < 0 || p >= 1 {
		t.Errorf("phase %v left [0,1)", p)
	}
}
