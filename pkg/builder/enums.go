package builder

import (
	"github.com/joeydtaylor/tracewire/pkg/internal/casing"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/formatter"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
)

// Casing modes applied uniformly to output keys.
const (
	CaseNone      = casing.None
	CaseSnake     = casing.Snake
	CaseCamel     = casing.Camel
	CasePascal    = casing.Pascal
	CaseScreaming = casing.Screaming
)

// Level formats.
const (
	LevelUppercase = formatter.LevelUppercase
	LevelLowercase = formatter.LevelLowercase
	LevelNumber    = formatter.LevelNumber
	LevelOff       = formatter.LevelOff
)

// Timestamp zones.
const (
	TimezoneUTC   = formatter.TimezoneUTC
	TimezoneLocal = formatter.TimezoneLocal
)

// Event levels.
const (
	TraceLevel = types.TraceLevel
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
)

// Seconds precisions for RFC3339Options.
const (
	PrecisionSeconds = formatter.PrecisionSeconds
	PrecisionMillis  = formatter.PrecisionMillis
	PrecisionMicros  = formatter.PrecisionMicros
	PrecisionNanos   = formatter.PrecisionNanos
)

// TimeFormatOff omits the timestamp field.
func TimeFormatOff() formatter.TimeFormat { return formatter.TimeFormatOff() }

// EpochSeconds renders whole seconds since the Unix epoch.
func EpochSeconds() formatter.TimeFormat { return formatter.EpochSeconds() }

// EpochMillis renders milliseconds since the Unix epoch.
func EpochMillis() formatter.TimeFormat { return formatter.EpochMillis() }

// RFC2822 renders e.g. "Sat, 31 Dec 2022 00:15:08 +0000".
func RFC2822() formatter.TimeFormat { return formatter.RFC2822() }

// RFC3339 renders e.g. "2022-12-31T00:15:08.241974+00:00".
func RFC3339() formatter.TimeFormat { return formatter.RFC3339() }

// RFC3339Options renders RFC3339 with the given fractional precision and
// optional Z suffix.
func RFC3339Options(precision formatter.SecondsPrecision, useZulu bool) formatter.TimeFormat {
	return formatter.RFC3339Options(precision, useZulu)
}

// PrettyTime renders "HH:MM:SS".
func PrettyTime() formatter.TimeFormat { return formatter.PrettyTime() }

// PrettyDateTime renders "YYYY-MM-DD HH:MM:SS".
func PrettyDateTime() formatter.TimeFormat { return formatter.PrettyDateTime() }

// CustomTime renders with an arbitrary Go reference layout.
func CustomTime(layout string) formatter.TimeFormat { return formatter.CustomTime(layout) }

// SpanOff suppresses the span field.
func SpanOff() spantrack.Format { return spantrack.Off() }

// SpanOverwrite reports only the innermost span name.
func SpanOverwrite() spantrack.Format { return spantrack.Overwrite() }

// SpanConcatenate joins ancestor span names with separator.
func SpanConcatenate(separator string) spantrack.Format {
	return spantrack.Concatenate(separator)
}

// OverwriteAll replaces parent values on field collision.
func OverwriteAll() fieldmap.JoinPolicy { return fieldmap.OverwriteAll() }

// JoinAll joins every colliding string field with separator.
func JoinAll(separator string) fieldmap.JoinPolicy { return fieldmap.JoinAll(separator) }

// JoinKeys joins only the listed keys with separator.
func JoinKeys(separator string, keys ...string) fieldmap.JoinPolicy {
	return fieldmap.JoinKeys(separator, keys...)
}
