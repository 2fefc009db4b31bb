package logschema

// Log schema constants for Tracewire structured records.
const (
	SchemaID = "tracewire.record.v1"

	FieldMessage   = "message"
	FieldLevel     = "level"
	FieldTimestamp = "timestamp"
	FieldFile      = "file"
	FieldModule    = "module"
	FieldSpan      = "span"
)

// Numeric level codes emitted when the level format is set to Number.
// The scale leaves room between codes for host frameworks with
// intermediate severities.
const (
	LevelCodeTrace = 10
	LevelCodeDebug = 20
	LevelCodeInfo  = 30
	LevelCodeWarn  = 40
	LevelCodeError = 50
)

// Record is a generic map representation of an assembled event record.
type Record map[string]interface{}
