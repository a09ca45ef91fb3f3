// Package audio plays a block-rendering source through the system audio
// device.
package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/justyntemme/soyboy/pkg/framework/process"
)

// Source renders one block of audio into ctx. soyboy.Processor satisfies it.
type Source interface {
	ProcessAudio(ctx *process.Context)
}

// bytesPerFrame is one stereo float32 frame
const bytesPerFrame = 2 * 4

type sourceRef struct {
	src Source
}

// Stream is an io.Reader producing interleaved stereo float32 little-endian
// frames pulled from a Source, one block at a time.
type Stream struct {
	source    atomic.Pointer[sourceRef] // swapped without locking the reader
	ctx       *process.Context
	blockSize int
}

// NewStream creates a stream rendering blocks of at most blockSize frames
func NewStream(sampleRate float64, blockSize int) *Stream {
	if blockSize <= 0 {
		blockSize = 512
	}
	return &Stream{
		ctx:       process.NewContext(blockSize, sampleRate),
		blockSize: blockSize,
	}
}

// SetSource replaces the source. A nil source makes the stream silent.
func (s *Stream) SetSource(src Source) {
	if src == nil {
		s.source.Store(nil)
		return
	}
	s.source.Store(&sourceRef{src: src})
}

// Read fills p with whole frames. Trailing bytes that do not make up a full
// frame are left untouched.
func (s *Stream) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	ref := s.source.Load()
	if ref == nil {
		clear(p[:frames*bytesPerFrame])
		return frames * bytesPerFrame, nil
	}

	off := 0
	for frames > 0 {
		n := min(frames, s.blockSize)
		s.ctx.Resize(n)
		ref.src.ProcessAudio(s.ctx)

		left, right := s.ctx.Output[0], s.ctx.Output[1]
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(p[off:], math.Float32bits(left[i]))
			binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(right[i]))
			off += bytesPerFrame
		}
		frames -= n
	}
	return off, nil
}
