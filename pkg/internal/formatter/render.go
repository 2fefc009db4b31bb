package formatter

import (
	"sort"

	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"go.uber.org/zap/buffer"
)

var bufferPool = buffer.NewPool()

// render produces the wire bytes for one record, newline-terminated, in a
// pooled buffer. The caller must Free the buffer after writing it.
func (f *Formatter) render(rec *record) *buffer.Buffer {
	if f.cfg.JSON {
		return renderJSON(rec)
	}
	return renderPretty(rec)
}

// renderJSON emits one compact JSON object with keys in the record's
// insertion order and values in their native JSON types.
func renderJSON(rec *record) *buffer.Buffer {
	buf := bufferPool.Get()
	buf.AppendByte('{')
	for i, e := range rec.fields.Entries() {
		if i > 0 {
			buf.AppendByte(',')
		}
		fieldmap.AppendQuoted(buf, e.Key)
		buf.AppendByte(':')
		e.Value.AppendJSON(buf)
	}
	buf.AppendByte('}')
	buf.AppendByte('\n')
	return buf
}

// renderPretty emits a "TIME LEVEL message" header line followed by one
// indented "key: value" line per remaining field, alphabetically by key, with
// values aligned to the widest key in the record. Message, level, and
// timestamp live in the header and are excluded from the field block.
func renderPretty(rec *record) *buffer.Buffer {
	buf := bufferPool.Get()

	wrote := false
	for _, part := range []string{rec.timeText, rec.levelText, rec.message} {
		if part == "" {
			continue
		}
		if wrote {
			buf.AppendByte(' ')
		}
		buf.AppendString(part)
		wrote = true
	}
	buf.AppendByte('\n')

	entries := make([]fieldmap.Entry, 0, rec.fields.Len())
	maxLen := 0
	for _, e := range rec.fields.Entries() {
		if rec.headerKey(e.Key) {
			continue
		}
		if len(e.Key) > maxLen {
			maxLen = len(e.Key)
		}
		entries = append(entries, e)
	}
	// The field block is alphabetical; insertion order only matters for JSON.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	for _, e := range entries {
		buf.AppendString("    ")
		buf.AppendString(e.Key)
		buf.AppendString(": ")
		for pad := maxLen - len(e.Key); pad > 0; pad-- {
			buf.AppendByte(' ')
		}
		buf.AppendString(e.Value.Text())
		buf.AppendByte('\n')
	}
	return buf
}

func (rec *record) headerKey(key string) bool {
	return key == rec.messageKey || key == rec.levelKey || key == rec.timeKey
}
