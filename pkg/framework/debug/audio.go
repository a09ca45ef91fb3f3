package debug

import (
	"math"
)

// AnalysisResult contains the results of audio buffer analysis.
type AnalysisResult struct {
	Samples        int
	Peak           float32
	RMS            float32
	DC             float32
	ClippedSamples int
	NaNCount       int
	ZeroCrossings  int
}

// Clipping reports whether any sample reached full scale or beyond.
func (r AnalysisResult) Clipping() bool { return r.ClippedSamples > 0 }

// Silent reports whether the buffer is below the silence threshold.
func (r AnalysisResult) Silent() bool { return r.RMS < silenceThreshold }

const (
	clippingThreshold = 1.0
	silenceThreshold  = 0.0001
)

// Analyze measures peak, RMS, DC offset, clipping, NaNs and zero crossings.
// NaN samples are counted and otherwise skipped.
func Analyze(buffer []float32) AnalysisResult {
	result := AnalysisResult{Samples: len(buffer)}
	if len(buffer) == 0 {
		return result
	}

	var sum, sumSquares float64
	var last float32
	haveLast := false
	valid := 0

	for _, sample := range buffer {
		if math.IsNaN(float64(sample)) {
			result.NaNCount++
			continue
		}
		valid++

		abs := sample
		if abs < 0 {
			abs = -abs
		}
		if abs > result.Peak {
			result.Peak = abs
		}
		if abs > clippingThreshold {
			result.ClippedSamples++
		}

		sum += float64(sample)
		sumSquares += float64(sample) * float64(sample)

		if haveLast && (last < 0) != (sample < 0) {
			result.ZeroCrossings++
		}
		last = sample
		haveLast = true
	}

	if valid > 0 {
		result.RMS = float32(math.Sqrt(sumSquares / float64(valid)))
		result.DC = float32(sum / float64(valid))
	}

	return result
}

// LogStats logs a one-line summary of a buffer and warnings for problems.
func LogStats(l *Logger, name string, r AnalysisResult) {
	l.Info("%s: %d samples, peak %.3f, rms %.3f, dc %.4f, %d zero crossings",
		name, r.Samples, r.Peak, r.RMS, r.DC, r.ZeroCrossings)
	if r.Clipping() {
		l.Warn("%s: %d samples above full scale", name, r.ClippedSamples)
	}
	if r.NaNCount > 0 {
		l.Error("%s: %d NaN samples", name, r.NaNCount)
	}
	if r.Silent() {
		l.Warn("%s: output is silent", name)
	}
}
