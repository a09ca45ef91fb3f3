package main

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/soyboy/pkg/framework/debug"
	"github.com/justyntemme/soyboy/pkg/soyboy"
)

func TestParseNotes(t *testing.T) {
	steps, err := parseNotes("A4:0.5  c#5:0.25 -:1 60:2")
	require.NoError(t, err)
	assert.Equal(t, []step{
		{pitch: 69, duration: 0.5},
		{pitch: 73, duration: 0.25},
		{rest: true, duration: 1},
		{pitch: 60, duration: 2},
	}, steps)
}

func TestParseNotesErrors(t *testing.T) {
	for _, list := range []string{
		"",
		"A4",
		"A4:0",
		"A4:-1",
		"A4:soon",
		"H4:1",
		"99999:1",
	} {
		_, err := parseNotes(list)
		assert.Error(t, err, "list %q", list)
	}
}

func TestSchedule(t *testing.T) {
	steps := []step{
		{pitch: 60, duration: 0.01},
		{rest: true, duration: 0.005},
		{pitch: 62, duration: 0.0001},
	}
	events, length := schedule(steps, 1000)
	assert.Equal(t, int64(16), length, "sub-sample steps last one sample")
	assert.Equal(t, []noteEvent{
		{at: 0, pitch: 60, on: true},
		{at: 10, pitch: 60},
		{at: 15, pitch: 62, on: true},
		{at: 16, pitch: 62},
	}, events)
}

func newTestProcessor(t *testing.T) *soyboy.Processor {
	t.Helper()
	proc := soyboy.NewProcessor(debug.New(io.Discard, "", 0))
	require.NoError(t, proc.Initialize(1000, 7))
	inst := proc.Instrument()
	inst.SetParam(soyboy.AttackTime, 0)
	inst.SetParam(soyboy.DecayTime, 0)
	inst.SetParam(soyboy.Sustain, 1)
	inst.SetParam(soyboy.ReleaseTime, 0)
	proc.SetActive(true)
	return proc
}

func TestRenderSteps(t *testing.T) {
	proc := newTestProcessor(t)
	steps := []step{{pitch: 69, duration: 0.01}, {rest: true, duration: 0.005}}

	var left, right []float32
	var blocks []int
	frames, err := renderSteps(proc, steps, 7, func(l, r []float32) error {
		blocks = append(blocks, len(l))
		left = append(left, l...)
		right = append(right, r...)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), frames)
	assert.Equal(t, []int{7, 7, 1}, blocks)
	assert.Equal(t, left, right)

	// 440 Hz at 1 kHz: phase steps by 0.44
	assert.Equal(t, []float32{1, 1, -1, 1, -1, 1, -1, 1, -1, -1}, left[:10])
	for i := 10; i < 15; i++ {
		assert.Zero(t, left[i], "sample %d after note off", i)
	}
}

func TestRenderIncludesReleaseTail(t *testing.T) {
	proc := newTestProcessor(t)
	proc.Instrument().SetParam(soyboy.ReleaseTime, 0.02)

	var n int
	frames, err := renderSteps(proc, []step{{pitch: 69, duration: 0.01}}, 64, func(l, _ []float32) error {
		n += len(l)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), frames)
	assert.Equal(t, 30, n)
}

func TestVoiceFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var v voiceFlags
	v.register(fs)
	require.NoError(t, fs.Parse([]string{"-sustain", "0.25", "-release", "1.5"}))

	inst := soyboy.New()
	v.apply(inst)
	assert.Equal(t, 0.25, inst.GetParam(soyboy.Sustain))
	assert.Equal(t, 1.5, inst.GetParam(soyboy.ReleaseTime))
	assert.InDelta(t, 0.01, inst.GetParam(soyboy.AttackTime), 1e-12, "unset flags keep the registry default")
}

func TestLogFlags(t *testing.T) {
	l := logFlags{level: "warn"}
	logger, closer, err := l.logger("x")
	require.NoError(t, err)
	assert.Equal(t, debug.LogLevelWarn, logger.Level())
	assert.NoError(t, closer.Close())

	l.level = "loud"
	_, _, err = l.logger("x")
	assert.Error(t, err)
}

func TestParamsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runParams(nil, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "Master Volume")
	assert.Contains(t, lines[1], "100%")
	assert.Contains(t, lines[5], "Release")
	assert.Contains(t, lines[5], "300.0 ms")
	assert.Contains(t, lines[5], "5.00 s")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	assert.Contains(t, buf.String(), soyboy.Info.Name)
	assert.Contains(t, buf.String(), soyboy.Info.UIDString())
}
