package fieldmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap/buffer"
)

// ValueKind tags the scalar type held by a Value.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	// KindDebug holds a pre-formatted debug representation of a value that has
	// no native scalar shape. Debug values render as strings.
	KindDebug
)

// Value is a tagged scalar. Fields may hold strings, integers, floats,
// booleans, null, or a pre-formatted debug string; nested objects and arrays
// are not representable and must be captured as debug strings by the
// instrumentation collaborator.
type Value struct {
	kind ValueKind
	str  string
	num  uint64
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int64 returns a signed integer Value.
func Int64(v int64) Value { return Value{kind: KindInt64, num: uint64(v)} }

// Int returns a signed integer Value.
func Int(v int) Value { return Int64(int64(v)) }

// Uint64 returns an unsigned integer Value.
func Uint64(v uint64) Value { return Value{kind: KindUint64, num: v} }

// Float64 returns a floating point Value.
func Float64(v float64) Value { return Value{kind: KindFloat64, num: math.Float64bits(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Debug returns a pre-formatted debug Value.
func Debug(s string) Value { return Value{kind: KindDebug, str: s} }

// Any converts an arbitrary Go value into a Value. Scalars map onto their
// native kinds; anything else degrades to its debug-string form so that field
// capture can never fail.
func Any(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int64(int64(x))
	case int8:
		return Int64(int64(x))
	case int16:
		return Int64(int64(x))
	case int32:
		return Int64(int64(x))
	case int64:
		return Int64(x)
	case uint:
		return Uint64(uint64(x))
	case uint8:
		return Uint64(uint64(x))
	case uint16:
		return Uint64(uint64(x))
	case uint32:
		return Uint64(uint64(x))
	case uint64:
		return Uint64(x)
	case float32:
		return Float64(float64(x))
	case float64:
		return Float64(x)
	case error:
		return Debug(x.Error())
	case fmt.Stringer:
		return Debug(x.String())
	default:
		return Debug(fmt.Sprintf("%+v", x))
	}
}

// Kind returns the tag of the Value.
func (v Value) Kind() ValueKind { return v.kind }

// StringRepresentation returns the Value's text and true when the Value is
// string-shaped (string or debug). Join policies only apply to such values.
func (v Value) StringRepresentation() (string, bool) {
	if v.kind == KindString || v.kind == KindDebug {
		return v.str, true
	}
	return "", false
}

// Interface returns the Value as a native Go value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString, KindDebug:
		return v.str
	case KindInt64:
		return int64(v.num)
	case KindUint64:
		return v.num
	case KindFloat64:
		return math.Float64frombits(v.num)
	case KindBool:
		return v.num == 1
	default:
		return nil
	}
}

// Text returns a best-effort plain-text rendering of the Value, used by the
// pretty renderer. Escaped newlines in debug values are re-indented so
// multi-line payloads stay inside the field block.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindDebug:
		return strings.ReplaceAll(v.str, "\n", "\n    ")
	case KindInt64:
		return strconv.FormatInt(int64(v.num), 10)
	case KindUint64:
		return strconv.FormatUint(v.num, 10)
	case KindFloat64:
		return formatFloat(math.Float64frombits(v.num))
	case KindBool:
		return strconv.FormatBool(v.num == 1)
	default:
		return "null"
	}
}

// AppendJSON appends the Value in its native JSON form to buf. Strings and
// debug values are quoted and escaped; numbers and booleans are emitted raw.
// Non-finite floats have no JSON form and degrade to quoted strings.
func (v Value) AppendJSON(buf *buffer.Buffer) {
	switch v.kind {
	case KindString, KindDebug:
		AppendQuoted(buf, v.str)
	case KindInt64:
		buf.AppendInt(int64(v.num))
	case KindUint64:
		buf.AppendUint(v.num)
	case KindFloat64:
		f := math.Float64frombits(v.num)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			AppendQuoted(buf, formatFloat(f))
			return
		}
		buf.AppendString(formatFloat(f))
	case KindBool:
		buf.AppendBool(v.num == 1)
	default:
		buf.AppendString("null")
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

const hexDigits = "0123456789abcdef"

// AppendQuoted appends s to buf as a quoted, escaped JSON string.
func AppendQuoted(buf *buffer.Buffer, s string) {
	buf.AppendByte('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b != '"' && b != '\\' {
			buf.AppendByte(b)
			continue
		}
		switch b {
		case '"', '\\':
			buf.AppendByte('\\')
			buf.AppendByte(b)
		case '\n':
			buf.AppendString(`\n`)
		case '\r':
			buf.AppendString(`\r`)
		case '\t':
			buf.AppendString(`\t`)
		default:
			buf.AppendString(`\u00`)
			buf.AppendByte(hexDigits[b>>4])
			buf.AppendByte(hexDigits[b&0xF])
		}
	}
	buf.AppendByte('"')
}
