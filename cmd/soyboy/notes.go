package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/justyntemme/soyboy/pkg/framework/param"
)

// step is one entry of a note list: a pitch held for a duration, or a rest
type step struct {
	pitch    int16
	rest     bool
	duration float64 // seconds
}

// parseNotes reads a list like "A4:0.5 C#5:0.25 -:0.5 60:1". Each entry is
// a note name, a MIDI number or "-" for a rest, then a duration in
// seconds.
func parseNotes(list string) ([]step, error) {
	var steps []step
	for _, field := range strings.Fields(list) {
		name, dur, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("note %q: missing duration", field)
		}

		d, err := strconv.ParseFloat(dur, 64)
		if err != nil || !(d > 0) || math.IsInf(d, 1) {
			return nil, fmt.Errorf("note %q: invalid duration %q", field, dur)
		}

		if name == "-" {
			steps = append(steps, step{rest: true, duration: d})
			continue
		}

		pitch, err := parsePitch(name)
		if err != nil {
			return nil, fmt.Errorf("note %q: %w", field, err)
		}
		steps = append(steps, step{pitch: pitch, duration: d})
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("empty note list")
	}
	return steps, nil
}

func parsePitch(name string) (int16, error) {
	if n, err := strconv.Atoi(name); err == nil {
		if n < math.MinInt16 || n > math.MaxInt16 {
			return 0, fmt.Errorf("pitch %d out of range", n)
		}
		return int16(n), nil
	}

	n, err := param.NoteParser(name)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt16 || n > math.MaxInt16 {
		return 0, fmt.Errorf("pitch %s out of range", name)
	}
	return int16(n), nil
}
