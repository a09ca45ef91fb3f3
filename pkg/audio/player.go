package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/justyntemme/soyboy/pkg/framework/debug"
)

// Player owns the oto context and plays a Stream on it
type Player struct {
	ctx     *oto.Context
	player  *oto.Player
	stream  *Stream
	logger  *debug.Logger
	started bool
	mutex   sync.Mutex // Only for setup/control operations
}

// NewPlayer opens the audio device for stereo float32 output. oto allows a
// single context per process.
func NewPlayer(sampleRate, blockSize int, logger *debug.Logger) (*Player, error) {
	if logger == nil {
		logger = debug.Default()
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   20 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	stream := NewStream(float64(sampleRate), blockSize)
	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(stream),
		stream: stream,
		logger: logger,
	}, nil
}

// SetSource selects what is played. It is safe to call while playing.
func (p *Player) SetSource(src Source) {
	p.stream.SetSource(src)
}

// Start begins playback
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
		p.logger.Info("audio started")
	}
}

// Stop pauses playback
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started && p.player != nil {
		p.player.Pause()
		p.started = false
		p.logger.Info("audio stopped")
	}
}

// Close stops playback and releases the player
func (p *Player) Close() error {
	p.Stop()
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	return err
}

// IsStarted reports whether playback is running
func (p *Player) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}
