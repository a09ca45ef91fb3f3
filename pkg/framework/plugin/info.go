// Package plugin describes an instrument to hosts: its metadata and the
// processor contract a host binding drives.
package plugin

import (
	"crypto/sha1"
	"errors"
	"fmt"

	"github.com/justyntemme/soyboy/pkg/framework/param"
	"github.com/justyntemme/soyboy/pkg/framework/process"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx", "Instrument|Synth")
}

// uidNamespace seeds name-based UIDs so that they never collide with ids
// derived from other namespaces
var uidNamespace = [16]byte{
	0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1,
	0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8,
}

// UID derives a stable 16-byte class id from the string ID (RFC 4122
// version 5 layout)
func (i Info) UID() [16]byte {
	h := sha1.New()
	h.Write(uidNamespace[:])
	h.Write([]byte(i.ID))
	sum := h.Sum(nil)

	var uid [16]byte
	copy(uid[:], sum)
	uid[6] = (uid[6] & 0x0f) | 0x50
	uid[8] = (uid[8] & 0x3f) | 0x80
	return uid
}

// UIDString formats the UID in the usual 8-4-4-4-12 form
func (i Info) UIDString() string {
	u := i.UID()
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}

// Validate checks that the metadata can be registered with a host
func (i Info) Validate() error {
	var errs []error
	if i.ID == "" {
		errs = append(errs, errors.New("missing ID"))
	}
	if i.Name == "" {
		errs = append(errs, errors.New("missing name"))
	}
	if i.Version == "" {
		errs = append(errs, errors.New("missing version"))
	}
	return errors.Join(errs...)
}

// Plugin is what a host binding loads
type Plugin interface {
	// GetInfo returns plugin metadata
	GetInfo() Info

	// CreateProcessor creates a new instance of the audio processor
	CreateProcessor() Processor
}

// Processor handles the actual audio processing
type Processor interface {
	// Initialize is called before processing starts
	Initialize(sampleRate float64, maxBlockSize int32) error

	// ProcessAudio renders one block. It must not allocate or block.
	ProcessAudio(ctx *process.Context)

	// Parameters returns the parameter definitions
	Parameters() *param.Registry

	// SetParamNormalized applies a host value (0-1)
	SetParamNormalized(id uint32, normalized float64) error

	// ParamNormalized reads a parameter as a host value (0-1)
	ParamNormalized(id uint32) (float64, error)

	// SetActive is called when processing starts/stops
	SetActive(active bool)

	// GetTailSamples returns the tail length in samples
	GetTailSamples() int32
}
