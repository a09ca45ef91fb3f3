package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/justyntemme/soyboy/pkg/framework/debug"
	"github.com/justyntemme/soyboy/pkg/framework/process"
	"github.com/justyntemme/soyboy/pkg/midi"
	"github.com/justyntemme/soyboy/pkg/soyboy"
	"github.com/justyntemme/soyboy/pkg/wav"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", "soyboy.wav", "output WAV file")
	notes := fs.String("notes", "A4:0.5", `note list, e.g. "A4:0.5 C5:0.25 -:0.25" (name or MIDI number : seconds, "-" rests)`)
	rate := fs.Int("rate", 44100, "sample rate in Hz")
	block := fs.Int("block", 512, "processing block size in samples")
	var voice voiceFlags
	voice.register(fs)
	var logs logFlags
	logs.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	steps, err := parseNotes(*notes)
	if err != nil {
		return err
	}
	if *rate <= 0 {
		return fmt.Errorf("invalid sample rate %d", *rate)
	}

	logger, closer, err := logs.logger("render")
	if err != nil {
		return err
	}
	defer closer.Close()

	proc := soyboy.NewProcessor(logger)
	if err := proc.Initialize(float64(*rate), int32(*block)); err != nil {
		return err
	}
	voice.apply(proc.Instrument())
	proc.SetActive(true)
	defer proc.SetActive(false)

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w, err := wav.NewWriter(f, *rate)
	if err != nil {
		return err
	}

	var mono []float32
	frames, err := renderSteps(proc, steps, *block, func(left, right []float32) error {
		mono = append(mono, left...)
		return w.WriteFrames(left, right)
	})
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish %s: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *out, err)
	}

	debug.LogStats(logger, *out, debug.Analyze(mono))
	logger.Info("wrote %s: %d frames, %.2f s", *out, frames, float64(frames)/float64(*rate))
	return nil
}

// noteEvent is a note on or off at an absolute sample position
type noteEvent struct {
	at    int64
	pitch int16
	on    bool
}

// schedule lays steps out on the sample timeline. A note's off and the next
// note's on share a sample, off first.
func schedule(steps []step, sampleRate float64) ([]noteEvent, int64) {
	var (
		events []noteEvent
		pos    int64
	)
	for _, s := range steps {
		n := int64(math.Round(s.duration * sampleRate))
		if n < 1 {
			n = 1
		}
		if !s.rest {
			events = append(events,
				noteEvent{at: pos, pitch: s.pitch, on: true},
				noteEvent{at: pos + n, pitch: s.pitch},
			)
		}
		pos += n
	}
	return events, pos
}

// renderSteps drives proc block by block through steps and the release
// tail, handing every block to sink. It returns the number of frames
// rendered.
func renderSteps(proc *soyboy.Processor, steps []step, blockSize int, sink func(left, right []float32) error) (int64, error) {
	if blockSize <= 0 {
		return 0, fmt.Errorf("invalid block size %d", blockSize)
	}

	events, length := schedule(steps, proc.SampleRate())
	total := length + int64(proc.GetTailSamples())
	ctx := process.NewContext(blockSize, proc.SampleRate())

	next := 0
	for start := int64(0); start < total; start += int64(blockSize) {
		size := int(min(int64(blockSize), total-start))
		ctx.Resize(size)

		for next < len(events) && events[next].at < start+int64(size) {
			e := events[next]
			base := midi.BaseEvent{Offset: int32(e.at - start)}
			if e.on {
				ctx.AddInputEvent(midi.NoteOnEvent{BaseEvent: base, Pitch: e.pitch, Velocity: 127})
			} else {
				ctx.AddInputEvent(midi.NoteOffEvent{BaseEvent: base, Pitch: e.pitch})
			}
			next++
		}

		proc.ProcessAudio(ctx)
		if err := sink(ctx.Output[0], ctx.Output[1]); err != nil {
			return start, err
		}
	}
	return total, nil
}
