package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/justyntemme/soyboy/pkg/audio"
	"github.com/justyntemme/soyboy/pkg/keyboard"
	"github.com/justyntemme/soyboy/pkg/soyboy"
)

const keyHelp = `SoyBoy live
  a w s e d f t g y h u j k o l p ; '   notes (C to F one octave up)
  space   release
  z / x   octave down / up
  q       quit
`

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	rate := fs.Int("rate", 44100, "sample rate in Hz")
	block := fs.Int("block", 256, "processing block size in samples")
	var voice voiceFlags
	voice.register(fs)
	var logs logFlags
	logs.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, closer, err := logs.logger("play")
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

	player, err := audio.NewPlayer(*rate, *block, logger.With("audio"))
	if err != nil {
		return err
	}
	defer player.Close()
	player.SetSource(proc)
	player.Start()

	fmt.Print(keyHelp)

	restore, err := keyboard.MakeRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer restore()

	return keyboard.New(proc.Controller(), logger.With("keys")).Run(os.Stdin)
}
