// Package keyboard turns a terminal into a one-octave-and-a-bit note
// keyboard. Terminals report key presses but not releases, so a key starts
// a note and space releases it.
package keyboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/justyntemme/soyboy/pkg/framework/debug"
)

// Action is what a key does
type Action int

const (
	ActionNone Action = iota
	ActionNoteOn
	ActionNoteOff
	ActionOctaveDown
	ActionOctaveUp
	ActionQuit
)

// Octave limits around the base note
const (
	BaseNote  = 60 // C4
	MinOctave = -4
	MaxOctave = 4
)

const ctrlC = 0x03

// Layout is the tracker-style mapping: the home row holds the white keys,
// the row above the black keys.
const Layout = "awsedftgyhujkolp;'"

// Lookup returns the action for a key and, for note keys, the semitone
// offset from the current octave's C.
func Lookup(key byte) (Action, int) {
	switch key {
	case ' ':
		return ActionNoteOff, 0
	case 'z':
		return ActionOctaveDown, 0
	case 'x':
		return ActionOctaveUp, 0
	case 'q', ctrlC:
		return ActionQuit, 0
	}
	for i := 0; i < len(Layout); i++ {
		if Layout[i] == key {
			return ActionNoteOn, i
		}
	}
	return ActionNone, 0
}

// Notes receives the keyboard's note events. soyboy.Controller satisfies it.
type Notes interface {
	NoteOn(pitch int16) bool
	NoteOff(pitch int16) bool
}

// Keyboard tracks the octave and the sounding note
type Keyboard struct {
	notes  Notes
	logger *debug.Logger
	octave int
	pitch  int16
	held   bool
}

// New creates a keyboard sending to notes
func New(notes Notes, logger *debug.Logger) *Keyboard {
	if logger == nil {
		logger = debug.Default()
	}
	return &Keyboard{notes: notes, logger: logger}
}

// Octave returns the current octave shift
func (k *Keyboard) Octave() int {
	return k.octave
}

// Press handles one key and reports whether it asked to quit
func (k *Keyboard) Press(key byte) bool {
	action, semitone := Lookup(key)
	switch action {
	case ActionNoteOn:
		pitch := int16(BaseNote + 12*k.octave + semitone)
		if !k.notes.NoteOn(pitch) {
			k.logger.Warn("note %d dropped", pitch)
			return false
		}
		k.pitch = pitch
		k.held = true
	case ActionNoteOff:
		k.release()
	case ActionOctaveDown:
		k.shift(-1)
	case ActionOctaveUp:
		k.shift(1)
	case ActionQuit:
		k.release()
		return true
	}
	return false
}

func (k *Keyboard) release() {
	if !k.held {
		return
	}
	k.notes.NoteOff(k.pitch)
	k.held = false
}

func (k *Keyboard) shift(delta int) {
	octave := k.octave + delta
	if octave < MinOctave || octave > MaxOctave {
		return
	}
	k.octave = octave
	k.logger.Debug("octave %+d", octave)
}

// Run feeds keys from r until a quit key or EOF
func (k *Keyboard) Run(r io.Reader) error {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if k.Press(b) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			k.release()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read keys: %w", err)
		}
	}
}

// MakeRaw puts f in raw mode and returns the function restoring it
func MakeRaw(f *os.File) (func() error, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", f.Name())
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}
