package spantrack

// FormatMode selects how nested span names compose into the record's span
// field.
type FormatMode int

const (
	// FormatOff omits the span field entirely.
	FormatOff FormatMode = iota
	// FormatOverwrite reports only the innermost span's name.
	FormatOverwrite
	// FormatConcatenate joins ancestor names with a separator, outermost first.
	FormatConcatenate
)

// Format is the span-name composition policy.
type Format struct {
	Mode      FormatMode
	Separator string
}

// Off returns the policy that suppresses the span field.
func Off() Format { return Format{Mode: FormatOff} }

// Overwrite returns the policy that reports the innermost span name only.
func Overwrite() Format { return Format{Mode: FormatOverwrite} }

// Concatenate returns the policy joining ancestor span names with separator.
func Concatenate(separator string) Format {
	return Format{Mode: FormatConcatenate, Separator: separator}
}

func (f Format) compose(parent, name string) string {
	switch f.Mode {
	case FormatOverwrite:
		if name == "" {
			return parent
		}
		return name
	case FormatConcatenate:
		// Unnamed nodes (field-only scopes) keep the parent's composed name.
		if parent == "" || name == "" {
			return parent + name
		}
		return parent + f.Separator + name
	default:
		return ""
	}
}
