package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/joeydtaylor/tracewire/pkg/internal/casing"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
	"github.com/joeydtaylor/tracewire/pkg/logschema"
)

// Metadata carries the per-event information supplied by the instrumentation
// collaborator alongside the event's fields.
type Metadata struct {
	Level   types.LogLevel
	Module  string // target path, e.g. "app::worker"
	File    string
	Line    int
	Message string    // primary message text, may be empty
	Time    time.Time // zero means "now"
}

// record is the transient assembled form of one event, built and discarded
// per emit. fields holds the complete ordered record for the JSON renderer;
// the remaining members feed the pretty renderer's header.
type record struct {
	fields    *fieldmap.FieldMap
	message   string
	levelText string
	timeText  string

	// cased metadata keys the pretty renderer keeps out of the field block
	messageKey string
	levelKey   string
	timeKey    string
}

// assemble builds the flat record: span effective fields, event fields merged
// on top under the join policy, derived fields, then metadata per the config
// toggles, with the casing mode applied to every key. Assembly never fails.
func (f *Formatter) assemble(stack *spantrack.Stack, eventFields *fieldmap.FieldMap, meta *Metadata) *record {
	cfg := f.cfg

	effective := fieldmap.New()
	spanName := ""
	if stack != nil {
		effective, spanName = stack.CurrentEffective()
	}
	merged := effective.Merge(eventFields, cfg.Join)

	message := meta.Message
	if eventFields != nil {
		// Only an event-supplied message-key field overrides the primary
		// message argument; a span-level field of the same key does not.
		if v, ok := eventFields.Get(cfg.MessageKey); ok {
			if s, isString := v.StringRepresentation(); isString {
				message = s
			} else {
				message = v.Text()
			}
		}
	}
	// The configured key is reserved for the message text; a leftover span or
	// event field under it would collide with the metadata entry appended last.
	merged.Delete(cfg.MessageKey)
	if message == "" {
		message = meta.Module
	}

	f.applyDerived(merged, meta, spanName, message)

	when := meta.Time
	if when.IsZero() {
		when = time.Now()
	}
	timeText := ""
	if cfg.Time.Mode() != TimeOff {
		timeText = FormatTime(when, cfg.Time, cfg.Timezone)
	}
	levelValue, levelOn := levelField(cfg.Level, meta.Level)

	rec := &record{
		message:    message,
		levelText:  levelHeader(cfg.Level, meta.Level),
		timeText:   timeText,
		messageKey: casing.Convert(cfg.MessageKey, cfg.Case),
		levelKey:   casing.Convert(logschema.FieldLevel, cfg.Case),
		timeKey:    casing.Convert(logschema.FieldTimestamp, cfg.Case),
	}

	out := fieldmap.New()
	for _, e := range merged.Entries() {
		out.Set(casing.Convert(e.Key, cfg.Case), e.Value)
	}
	if cfg.Module {
		out.Set(casing.Convert(logschema.FieldModule, cfg.Case), fieldmap.String(meta.Module))
	}
	if cfg.File {
		out.Set(casing.Convert(logschema.FieldFile, cfg.Case), fieldmap.String(meta.File+":"+strconv.Itoa(meta.Line)))
	}
	if timeText != "" {
		out.Set(rec.timeKey, fieldmap.String(timeText))
	}
	if cfg.Span.Mode != spantrack.FormatOff && spanName != "" {
		out.Set(casing.Convert(logschema.FieldSpan, cfg.Case), fieldmap.String(spanName))
	}
	if levelOn {
		out.Set(rec.levelKey, levelValue)
	}
	out.Set(rec.messageKey, fieldmap.String(message))

	rec.fields = out
	return rec
}

// levelField returns the level's record value, or false when the level field
// is off.
func levelField(format LevelFormat, level types.LogLevel) (fieldmap.Value, bool) {
	switch format {
	case LevelNumber:
		return fieldmap.Int64(int64(levelCode(level))), true
	case LevelLowercase:
		return fieldmap.String(level.String()), true
	case LevelUppercase:
		return fieldmap.String(strings.ToUpper(level.String())), true
	default:
		return fieldmap.Value{}, false
	}
}

// levelHeader returns the text shown in the pretty header, empty if off.
func levelHeader(format LevelFormat, level types.LogLevel) string {
	switch format {
	case LevelNumber:
		return strconv.Itoa(levelCode(level))
	case LevelLowercase:
		return level.String()
	case LevelUppercase:
		return strings.ToUpper(level.String())
	default:
		return ""
	}
}

func levelCode(level types.LogLevel) int {
	switch level {
	case types.TraceLevel:
		return logschema.LevelCodeTrace
	case types.DebugLevel:
		return logschema.LevelCodeDebug
	case types.InfoLevel:
		return logschema.LevelCodeInfo
	case types.WarnLevel:
		return logschema.LevelCodeWarn
	default:
		return logschema.LevelCodeError
	}
}
