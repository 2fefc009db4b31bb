package formatter

import (
	"github.com/joeydtaylor/tracewire/pkg/internal/casing"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
)

// LevelFormat selects how an event's level appears in the record.
type LevelFormat int

const (
	// LevelUppercase emits the level as upper-case text, e.g. "INFO".
	LevelUppercase LevelFormat = iota
	// LevelLowercase emits the level as lower-case text, e.g. "info".
	LevelLowercase
	// LevelNumber emits the numeric code 10/20/30/40/50 for
	// trace/debug/info/warn/error.
	LevelNumber
	// LevelOff omits the level field.
	LevelOff
)

// Timezone selects the zone timestamps are rendered in.
type Timezone int

const (
	TimezoneUTC Timezone = iota
	TimezoneLocal
)

// Config is the frozen snapshot of formatting behavior. It is assembled by
// NewFormatter from options and never mutated afterwards, so concurrent
// readers need no synchronization.
type Config struct {
	File       bool              // append "file": "path:line"
	Module     bool              // append "module": target path
	Span       spantrack.Format  // span-name composition policy
	Timezone   Timezone          // zone for rendered timestamps
	Time       TimeFormat        // timestamp format, TimeFormatOff() to omit
	Case       casing.Mode       // key casing applied to every output key
	Join       fieldmap.JoinPolicy
	JSON       bool              // JSON output instead of the pretty block
	Level      LevelFormat       // level rendering
	MessageKey string            // key whose event-supplied value overrides the message
}
