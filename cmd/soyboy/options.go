package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/justyntemme/soyboy/pkg/framework/debug"
	"github.com/justyntemme/soyboy/pkg/soyboy"
)

// voiceFlags are the tunables every command that makes sound accepts,
// defaulting to the registry defaults
type voiceFlags struct {
	values map[soyboy.Parameter]*float64
}

var voiceFlagNames = map[soyboy.Parameter]string{
	soyboy.MasterVolume: "volume",
	soyboy.AttackTime:   "attack",
	soyboy.DecayTime:    "decay",
	soyboy.Sustain:      "sustain",
	soyboy.ReleaseTime:  "release",
}

func (v *voiceFlags) register(fs *flag.FlagSet) {
	reg := soyboy.NewRegistry()
	v.values = make(map[soyboy.Parameter]*float64, len(voiceFlagNames))
	for _, p := range soyboy.Parameters() {
		def := reg.Get(p.ID())
		usage := fmt.Sprintf("%s (%g-%g", def.Name, def.Min, def.Max)
		if def.Unit == "s" {
			usage += " seconds"
		}
		usage += ")"
		v.values[p] = fs.Float64(voiceFlagNames[p], def.DefaultPlain(), usage)
	}
}

func (v *voiceFlags) apply(target soyboy.Parametric) {
	for _, p := range soyboy.Parameters() {
		if value, ok := v.values[p]; ok {
			target.SetParam(p, *value)
		}
	}
}

// logFlags select the log level and destination
type logFlags struct {
	level string
	file  string
}

func (l *logFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&l.level, "log-level", "info", "log level (debug, info, warn, error, off)")
	fs.StringVar(&l.file, "log-file", "", "append logs to this file instead of stderr")
}

// logger builds the configured logger. The closer is a no-op for stderr.
func (l *logFlags) logger(prefix string) (*debug.Logger, io.Closer, error) {
	level, err := debug.ParseLevel(l.level)
	if err != nil {
		return nil, nil, err
	}

	var (
		logger *debug.Logger
		closer io.Closer = nopCloser{}
	)
	if l.file != "" {
		logger, closer, err = debug.NewFileLogger(l.file, prefix, debug.DefaultFlags)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger = debug.New(os.Stderr, prefix, debug.FlagLevel|debug.FlagPrefix)
	}
	logger.SetLevel(level)
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
