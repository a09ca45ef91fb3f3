package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Common parameter formatters and parsers

// PercentFormatter formats a 0-1 level as a percentage
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}

// PercentParser parses percentage strings back to a 0-1 level
func PercentParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	val, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	return val / 100, nil
}

// TimeFormatter formats a duration given in seconds with appropriate units
func TimeFormatter(seconds float64) string {
	ms := seconds * 1000
	if ms < 1000 {
		return fmt.Sprintf("%.1f ms", ms)
	}
	return fmt.Sprintf("%.2f s", seconds)
}

// TimeParser parses time strings to seconds. A bare number is taken as
// milliseconds.
func TimeParser(str string) (float64, error) {
	str = strings.TrimSpace(str)

	if strings.HasSuffix(str, "ms") {
		val, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "ms")), 64)
		if err != nil {
			return 0, err
		}
		return val / 1000, nil
	}

	if strings.HasSuffix(str, "s") {
		return strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "s")), 64)
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return val / 1000, nil
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteFormatter formats MIDI note numbers. Negative numbers are valid and
// land in octave -2 and below.
func NoteFormatter(noteNumber float64) string {
	n := int(noteNumber)
	note := ((n % 12) + 12) % 12
	octave := (n-note)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[note], octave)
}

var noteOffsets = map[string]int{
	"C":  0,
	"C#": 1, "DB": 1,
	"D":  2,
	"D#": 3, "EB": 3,
	"E":  4,
	"F":  5,
	"F#": 6, "GB": 6,
	"G":  7,
	"G#": 8, "AB": 8,
	"A":  9,
	"A#": 10, "BB": 10,
	"B":  11,
}

// NoteParser parses note names ("A4", "c#3", "Bb-1") to MIDI numbers
func NoteParser(str string) (float64, error) {
	str = strings.ToUpper(strings.TrimSpace(str))

	octaveStart := -1
	for i, ch := range str {
		if ch >= '0' && ch <= '9' || ch == '-' {
			octaveStart = i
			break
		}
	}

	if octaveStart <= 0 {
		return 0, fmt.Errorf("no octave number found in note: %s", str)
	}

	noteName := str[:octaveStart]
	octaveStr := str[octaveStart:]

	noteOffset, ok := noteOffsets[noteName]
	if !ok {
		return 0, fmt.Errorf("unknown note name: %s", noteName)
	}

	octave, err := strconv.Atoi(octaveStr)
	if err != nil {
		return 0, fmt.Errorf("invalid octave number: %s", octaveStr)
	}

	return float64((octave+1)*12 + noteOffset), nil
}
