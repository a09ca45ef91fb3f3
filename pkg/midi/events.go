package midi

import (
	"fmt"
)

type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
	EventTypeAllNotesOff
	EventTypeParamChange
)

// Event is anything scheduled at a sample offset inside a processing block
type Event interface {
	Type() EventType
	SampleOffset() int32
	String() string
}

type BaseEvent struct {
	Offset int32
}

func (e BaseEvent) SampleOffset() int32 {
	return e.Offset
}

type NoteOnEvent struct {
	BaseEvent
	Pitch    int16
	Velocity uint8
}

func (e NoteOnEvent) Type() EventType {
	return EventTypeNoteOn
}

func (e NoteOnEvent) String() string {
	return fmt.Sprintf("NoteOn{pitch:%d, vel:%d, offset:%d}", e.Pitch, e.Velocity, e.Offset)
}

type NoteOffEvent struct {
	BaseEvent
	Pitch int16
}

func (e NoteOffEvent) Type() EventType {
	return EventTypeNoteOff
}

func (e NoteOffEvent) String() string {
	return fmt.Sprintf("NoteOff{pitch:%d, offset:%d}", e.Pitch, e.Offset)
}

// AllNotesOffEvent releases whatever is sounding
type AllNotesOffEvent struct {
	BaseEvent
}

func (e AllNotesOffEvent) Type() EventType {
	return EventTypeAllNotesOff
}

func (e AllNotesOffEvent) String() string {
	return fmt.Sprintf("AllNotesOff{offset:%d}", e.Offset)
}

// ParamChangeEvent carries host automation. Value is normalized (0-1).
type ParamChangeEvent struct {
	BaseEvent
	ID    uint32
	Value float64
}

func (e ParamChangeEvent) Type() EventType {
	return EventTypeParamChange
}

func (e ParamChangeEvent) String() string {
	return fmt.Sprintf("ParamChange{id:%d, val:%.4f, offset:%d}", e.ID, e.Value, e.Offset)
}

const (
	CCAllSoundOff uint8 = 120
	CCAllNotesOff uint8 = 123
)
