package soyboy

import (
	"github.com/justyntemme/soyboy/pkg/framework/debug"
	"github.com/justyntemme/soyboy/pkg/framework/plugin"
)

// Info identifies the instrument to hosts
var Info = plugin.Info{
	ID:       "com.soyboy.instrument",
	Name:     "SoyBoy SP",
	Version:  "0.1.0",
	Vendor:   "SoyBoy",
	Category: "Instrument|Synth",
}

// Plugin is the entry point a host binding loads
type Plugin struct {
	Logger *debug.Logger
}

// GetInfo returns plugin metadata
func (p Plugin) GetInfo() plugin.Info {
	return Info
}

// CreateProcessor creates an independent voice with default parameters
func (p Plugin) CreateProcessor() plugin.Processor {
	return NewProcessor(p.Logger)
}

var (
	_ plugin.Plugin    = Plugin{}
	_ plugin.Processor = (*Processor)(nil)
)
