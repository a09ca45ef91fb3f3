// Package wav writes rendered audio as 16-bit stereo PCM RIFF/WAVE.
package wav

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arl/blip/wave"
)

// Format constants
const (
	Channels      = 2
	BitsPerSample = 16
	BlockAlign    = Channels * BitsPerSample / 8

	headerSize = 44

	// wave.Writer.Write takes at most this many samples per call
	chunkSamples = 2048
)

// MaxFrames is the longest file whose RIFF sizes fit in 32 bits
const MaxFrames = (math.MaxUint32 - (headerSize - 8)) / BlockAlign

var (
	// ErrClosed is returned by writes after Close
	ErrClosed = errors.New("wav: writer closed")

	// ErrTooLong is returned by a write that would pass MaxFrames
	ErrTooLong = errors.New("wav: file too long for 32-bit RIFF sizes")
)

// Writer collects stereo frames and writes the complete file to the
// underlying writer on Close.
type Writer struct {
	w      *wave.Writer
	frames int
	buf    [chunkSamples]int16
	closed bool
}

// NewWriter creates a stereo writer at sampleRate
func NewWriter(w io.Writer, sampleRate int) (*Writer, error) {
	if sampleRate <= 0 || sampleRate > math.MaxUint32/BlockAlign {
		return nil, fmt.Errorf("wav: invalid sample rate %d", sampleRate)
	}
	ww := wave.NewWriter(w, sampleRate)
	ww.EnableStereo()
	return &Writer{w: ww}, nil
}

// WriteFrames appends len(left) frames. right may be nil for a mono source,
// in which case left is duplicated.
func (wr *Writer) WriteFrames(left, right []float32) error {
	if wr.closed {
		return ErrClosed
	}
	if right != nil && len(right) != len(left) {
		return fmt.Errorf("wav: channel length mismatch %d != %d", len(left), len(right))
	}
	if len(left) > MaxFrames-wr.frames {
		return ErrTooLong
	}

	n := 0
	for i, l := range left {
		r := l
		if right != nil {
			r = right[i]
		}
		wr.buf[n] = toPCM(l)
		wr.buf[n+1] = toPCM(r)
		n += 2
		if n == len(wr.buf) {
			wr.w.Write(wr.buf[:n])
			n = 0
		}
	}
	if n > 0 {
		wr.w.Write(wr.buf[:n])
	}

	wr.frames += len(left)
	return nil
}

// Frames returns the number of frames written so far
func (wr *Writer) Frames() int {
	return wr.frames
}

// Close writes the header and the samples. It does not close the
// underlying writer.
func (wr *Writer) Close() error {
	if wr.closed {
		return nil
	}
	wr.closed = true
	if err := wr.w.Close(); err != nil {
		return fmt.Errorf("wav: write file: %w", err)
	}
	return nil
}

// toPCM converts a float sample to 16-bit, clipping to [-1, 1]. NaN is
// written as silence.
func toPCM(s float32) int16 {
	v := float64(s)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= 1:
		return math.MaxInt16
	case v <= -1:
		return -math.MaxInt16
	}
	return int16(math.Round(v * math.MaxInt16))
}
