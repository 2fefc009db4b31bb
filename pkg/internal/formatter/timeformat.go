package formatter

import (
	"strconv"
	"time"
)

// TimeMode enumerates the supported timestamp renderings.
type TimeMode int

const (
	TimeOff TimeMode = iota
	TimeEpochSeconds
	TimeEpochMillis
	TimeEpochMicros
	TimeEpochNanos
	TimeRFC2822
	TimeRFC3339
	TimePretty
	TimePrettyDate
	TimeCustom
)

// SecondsPrecision is the fractional-second precision for RFC3339Options.
type SecondsPrecision int

const (
	PrecisionSeconds SecondsPrecision = iota
	PrecisionMillis
	PrecisionMicros
	PrecisionNanos
)

// TimeFormat describes how an event timestamp is rendered. Construct with one
// of the constructors below.
type TimeFormat struct {
	mode      TimeMode
	precision SecondsPrecision
	zulu      bool
	layout    string
}

// TimeFormatOff omits the timestamp field.
func TimeFormatOff() TimeFormat { return TimeFormat{mode: TimeOff} }

// EpochSeconds renders whole seconds since the Unix epoch.
func EpochSeconds() TimeFormat { return TimeFormat{mode: TimeEpochSeconds} }

// EpochMillis renders milliseconds since the Unix epoch.
func EpochMillis() TimeFormat { return TimeFormat{mode: TimeEpochMillis} }

// EpochMicros renders microseconds since the Unix epoch.
func EpochMicros() TimeFormat { return TimeFormat{mode: TimeEpochMicros} }

// EpochNanos renders nanoseconds since the Unix epoch.
func EpochNanos() TimeFormat { return TimeFormat{mode: TimeEpochNanos} }

// RFC2822 renders e.g. "Sat, 31 Dec 2022 00:15:08 +0000".
func RFC2822() TimeFormat { return TimeFormat{mode: TimeRFC2822} }

// RFC3339 renders e.g. "2022-12-31T00:15:08.241974+00:00".
func RFC3339() TimeFormat {
	return TimeFormat{mode: TimeRFC3339, precision: PrecisionMicros}
}

// RFC3339Options renders RFC3339 with the given fractional precision,
// replacing a +00:00 offset with Z when useZulu is set.
func RFC3339Options(precision SecondsPrecision, useZulu bool) TimeFormat {
	return TimeFormat{mode: TimeRFC3339, precision: precision, zulu: useZulu}
}

// PrettyTime renders "HH:MM:SS".
func PrettyTime() TimeFormat { return TimeFormat{mode: TimePretty} }

// PrettyDateTime renders "YYYY-MM-DD HH:MM:SS".
func PrettyDateTime() TimeFormat { return TimeFormat{mode: TimePrettyDate} }

// CustomTime renders with an arbitrary Go reference layout.
func CustomTime(layout string) TimeFormat {
	return TimeFormat{mode: TimeCustom, layout: layout}
}

// Mode returns the format's mode.
func (tf TimeFormat) Mode() TimeMode { return tf.mode }

func (tf TimeFormat) rfc3339Layout() string {
	layout := "2006-01-02T15:04:05"
	switch tf.precision {
	case PrecisionMillis:
		layout += ".000"
	case PrecisionMicros:
		layout += ".000000"
	case PrecisionNanos:
		layout += ".000000000"
	}
	if tf.zulu {
		return layout + "Z07:00"
	}
	return layout + "-07:00"
}

// FormatTime renders t per the format and timezone. TimeOff renders the
// epoch seconds; callers gate the field's presence before calling.
func FormatTime(t time.Time, tf TimeFormat, tz Timezone) string {
	if tz == TimezoneUTC {
		t = t.UTC()
	} else {
		t = t.Local()
	}

	switch tf.mode {
	case TimeEpochSeconds:
		return strconv.FormatInt(t.Unix(), 10)
	case TimeEpochMillis:
		return strconv.FormatInt(t.UnixMilli(), 10)
	case TimeEpochMicros:
		return strconv.FormatInt(t.UnixMicro(), 10)
	case TimeEpochNanos:
		return strconv.FormatInt(t.UnixNano(), 10)
	case TimeRFC2822:
		return t.Format("Mon, 02 Jan 2006 15:04:05 -0700")
	case TimeRFC3339:
		return t.Format(tf.rfc3339Layout())
	case TimePretty:
		return t.Format("15:04:05")
	case TimePrettyDate:
		return t.Format("2006-01-02 15:04:05")
	case TimeCustom:
		return t.Format(tf.layout)
	default:
		return strconv.FormatInt(t.Unix(), 10)
	}
}
