// Package param provides parameter definitions shared by the synth core and
// the host/GUI side.
package param

import (
	"fmt"
	"strconv"
)

// Parameter describes one automatable value: its id, display names, plain
// range and formatting. It does not hold the value itself; hosts exchange
// normalized values (0-1) and the definition converts them to plain units.
type Parameter struct {
	ID           uint32
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64 // normalized
	Flags        uint32

	// Value formatting
	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Flags for parameters
const (
	CanAutomate uint32 = 1 << 0
)

// DefaultPlain returns the default value in plain units.
func (p *Parameter) DefaultPlain() float64 {
	return p.Denormalize(p.DefaultValue)
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float64) string, parse func(string) (float64, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// FormatValue returns formatted parameter value
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses string to normalized value
func (p *Parameter) ParseValue(str string) (float64, error) {
	var (
		plain float64
		err   error
	)
	if p.parseFunc != nil {
		plain, err = p.parseFunc(str)
	} else {
		plain, err = strconv.ParseFloat(str, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", p.Name, err)
	}
	return p.Normalize(plain), nil
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	normalized := (plain - p.Min) / (p.Max - p.Min)
	if !(normalized > 0) {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts normalized (0-1) to plain value. NaN maps to Min.
func (p *Parameter) Denormalize(normalized float64) float64 {
	if !(normalized > 0) {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	return p.Min + normalized*(p.Max-p.Min)
}
