package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Decode turns one raw channel message into an Event scheduled at offset.
// Note on with velocity zero counts as note off, and the all-notes-off and
// all-sound-off controllers become AllNotesOffEvent. Anything else is
// reported as not handled.
func Decode(raw []byte, offset int32) (Event, bool) {
	if len(raw) < 2 {
		return nil, false
	}
	msg := gomidi.Message(raw)

	var channel, key, velocity, controller, value uint8
	switch {
	case msg.GetNoteStart(&channel, &key, &velocity):
		return NoteOnEvent{
			BaseEvent: BaseEvent{Offset: offset},
			Pitch:     int16(key),
			Velocity:  velocity,
		}, true

	case msg.GetNoteEnd(&channel, &key):
		return NoteOffEvent{
			BaseEvent: BaseEvent{Offset: offset},
			Pitch:     int16(key),
		}, true

	case msg.GetControlChange(&channel, &controller, &value):
		if controller == CCAllNotesOff || controller == CCAllSoundOff {
			return AllNotesOffEvent{BaseEvent: BaseEvent{Offset: offset}}, true
		}
	}

	return nil, false
}
