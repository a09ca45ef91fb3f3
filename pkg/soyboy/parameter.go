package soyboy

import (
	"errors"
	"fmt"
)

// Parameter identifies one automatable value of the instrument. The numeric
// value is the stable id exchanged with hosts.
type Parameter uint32

const (
	MasterVolume Parameter = iota
	AttackTime
	DecayTime
	Sustain
	ReleaseTime

	numParameters
)

// ErrUnknownParameter is matched by every UnknownParameterError
var ErrUnknownParameter = errors.New("unknown parameter")

// UnknownParameterError reports an id outside the parameter set
type UnknownParameterError struct {
	ID uint32
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter id %d", e.ID)
}

// Is makes errors.Is(err, ErrUnknownParameter) hold
func (e *UnknownParameterError) Is(target error) bool {
	return target == ErrUnknownParameter
}

// ParameterFromID converts a host id to a Parameter
func ParameterFromID(id uint32) (Parameter, error) {
	if id >= uint32(numParameters) {
		return 0, &UnknownParameterError{ID: id}
	}
	return Parameter(id), nil
}

// Parameters returns every parameter in id order
func Parameters() []Parameter {
	return []Parameter{MasterVolume, AttackTime, DecayTime, Sustain, ReleaseTime}
}

// Valid reports whether p is one of the defined parameters
func (p Parameter) Valid() bool {
	return p < numParameters
}

// ID returns the host id
func (p Parameter) ID() uint32 {
	return uint32(p)
}

func (p Parameter) String() string {
	switch p {
	case MasterVolume:
		return "MasterVolume"
	case AttackTime:
		return "AttackTime"
	case DecayTime:
		return "DecayTime"
	case Sustain:
		return "Sustain"
	case ReleaseTime:
		return "ReleaseTime"
	default:
		return fmt.Sprintf("Parameter(%d)", uint32(p))
	}
}

// Parametric is implemented by anything whose tunables are addressed by
// Parameter. Values are stored and returned verbatim.
type Parametric interface {
	SetParam(p Parameter, value float64)
	GetParam(p Parameter) float64
}
