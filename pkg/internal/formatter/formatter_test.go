package formatter_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/joeydtaylor/tracewire/pkg/internal/casing"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/formatter"
	"github.com/joeydtaylor/tracewire/pkg/internal/sinks"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
)

// newJSONFormatter builds a formatter whose output depends only on the event:
// JSON records, numeric levels, no timestamp, innermost span name.
func newJSONFormatter(buf *sinks.BufferSink, options ...types.Option[*formatter.Formatter]) *formatter.Formatter {
	base := []types.Option[*formatter.Formatter]{
		formatter.WithJSON(true),
		formatter.WithTime(formatter.TimeFormatOff()),
		formatter.WithLevelFormat(formatter.LevelNumber),
		formatter.WithSpanFormat(spantrack.Overwrite()),
		formatter.WithWriter(buf),
	}
	return formatter.NewFormatter(append(base, options...)...)
}

func infoMeta(message string) formatter.Metadata {
	return formatter.Metadata{Level: types.InfoLevel, Message: message, Time: time.Now()}
}

func singleLine(t *testing.T, buf *sinks.BufferSink) string {
	t.Helper()
	lines := buf.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected exactly one record, got %d: %q", len(lines), lines)
	}
	return lines[0]
}

func TestEmitNestedSpansExactRecord(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	stack := f.NewStack()
	outer := stack.Enter(spantrack.NewNode("math", fieldmap.FromPairs("a", 5)))
	defer outer.Exit()
	inner := stack.Enter(spantrack.NewNode("add", fieldmap.FromPairs("b", 10)))
	defer inner.Exit()

	if err := f.Emit(stack, fieldmap.New(), infoMeta("result: 15")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"a":5,"b":10,"span":"add","level":30,"message":"result: 15"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestSpanNamesConcatenateByDefault(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := formatter.NewFormatter(
		formatter.WithJSON(true),
		formatter.WithTime(formatter.TimeFormatOff()),
		formatter.WithLevelFormat(formatter.LevelNumber),
		formatter.WithWriter(buf),
	)

	stack := f.NewStack()
	outer := stack.Enter(spantrack.NewNode("math", nil))
	defer outer.Exit()
	inner := stack.Enter(spantrack.NewNode("add", nil))
	defer inner.Exit()

	if err := f.Emit(stack, fieldmap.New(), infoMeta("deep")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if got := singleLine(t, buf); !strings.Contains(got, `"span":"math::add"`) {
		t.Fatalf("expected concatenated span name, got %s", got)
	}
}

func TestEventFieldsOverrideSpanFields(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	stack := f.NewStack()
	entered := stack.Enter(spantrack.NewNode("job", fieldmap.FromPairs("state", "queued")))
	defer entered.Exit()

	if err := f.Emit(stack, fieldmap.FromPairs("state", "running"), infoMeta("tick")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"state":"running","span":"job","level":30,"message":"tick"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestEmitOutsideAnySpan(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	if err := f.Emit(nil, fieldmap.FromPairs("k", 1), infoMeta("free")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"k":1,"level":30,"message":"free"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestMessageKeyFieldOverridesMessage(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	if err := f.Emit(nil, fieldmap.FromPairs("message", "from field"), infoMeta("ignored")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"level":30,"message":"from field"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestSpanMessageFieldDoesNotOverrideMessage(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	stack := f.NewStack()
	entered := stack.Enter(spantrack.NewNode("job", fieldmap.FromPairs("message", "from span")))
	defer entered.Exit()

	if err := f.Emit(stack, fieldmap.New(), infoMeta("primary")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"span":"job","level":30,"message":"primary"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestEventMessageFieldBeatsSpanMessageField(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	stack := f.NewStack()
	entered := stack.Enter(spantrack.NewNode("job", fieldmap.FromPairs("message", "from span")))
	defer entered.Exit()

	if err := f.Emit(stack, fieldmap.FromPairs("message", "from event"), infoMeta("primary")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"span":"job","level":30,"message":"from event"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestNonStringMessageFieldRendersAsText(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	if err := f.Emit(nil, fieldmap.FromPairs("message", 42), infoMeta("ignored")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	if got := singleLine(t, buf); got != `{"level":30,"message":"42"}` {
		t.Fatalf("record mismatch: %s", got)
	}
}

func TestEmptyMessageFallsBackToModule(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)

	meta := formatter.Metadata{Level: types.InfoLevel, Module: "worker", Time: time.Now()}
	if err := f.Emit(nil, fieldmap.New(), meta); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	if got := singleLine(t, buf); got != `{"level":30,"message":"worker"}` {
		t.Fatalf("record mismatch: %s", got)
	}
}

func TestCustomMessageKey(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf, formatter.WithMessageKey("msg"))

	if err := f.Emit(nil, fieldmap.FromPairs("msg", "custom"), infoMeta("ignored")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	if got := singleLine(t, buf); got != `{"level":30,"msg":"custom"}` {
		t.Fatalf("record mismatch: %s", got)
	}
}

func TestCasingAppliesToEveryKey(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf,
		formatter.WithCase(casing.Camel),
		formatter.WithModule(true),
	)

	meta := infoMeta("hi")
	meta.Module = "app"
	if err := f.Emit(nil, fieldmap.FromPairs("user_id", 42), meta); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"userId":42,"module":"app","level":30,"message":"hi"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestModuleAndFileMetadata(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf,
		formatter.WithModule(true),
		formatter.WithFile(true),
	)

	meta := infoMeta("located")
	meta.Module = "worker"
	meta.File = "worker/run.go"
	meta.Line = 17
	if err := f.Emit(nil, fieldmap.New(), meta); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"module":"worker","file":"worker/run.go:17","level":30,"message":"located"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestLevelFormats(t *testing.T) {
	cases := []struct {
		format formatter.LevelFormat
		want   string
	}{
		{formatter.LevelNumber, `{"level":40,"message":"m"}`},
		{formatter.LevelLowercase, `{"level":"warn","message":"m"}`},
		{formatter.LevelUppercase, `{"level":"WARN","message":"m"}`},
		{formatter.LevelOff, `{"message":"m"}`},
	}
	for _, tc := range cases {
		buf := sinks.NewBufferSink()
		f := newJSONFormatter(buf, formatter.WithLevelFormat(tc.format))

		meta := formatter.Metadata{Level: types.WarnLevel, Message: "m", Time: time.Now()}
		if err := f.Emit(nil, fieldmap.New(), meta); err != nil {
			t.Fatalf("emit failed: %v", err)
		}
		if got := singleLine(t, buf); got != tc.want {
			t.Errorf("level format %v: got %s, want %s", tc.format, got, tc.want)
		}
	}
}

func TestLevelCodes(t *testing.T) {
	codes := map[types.LogLevel]string{
		types.TraceLevel: `"level":10`,
		types.DebugLevel: `"level":20`,
		types.InfoLevel:  `"level":30`,
		types.WarnLevel:  `"level":40`,
		types.ErrorLevel: `"level":50`,
	}
	for level, want := range codes {
		buf := sinks.NewBufferSink()
		f := newJSONFormatter(buf)

		meta := formatter.Metadata{Level: level, Message: "m", Time: time.Now()}
		if err := f.Emit(nil, fieldmap.New(), meta); err != nil {
			t.Fatalf("emit failed: %v", err)
		}
		if got := singleLine(t, buf); !strings.Contains(got, want) {
			t.Errorf("level %v: got %s, want it to contain %s", level, got, want)
		}
	}
}

func TestLevelHelpersEmitOneRecordEach(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf)
	stack := f.NewStack()

	f.Trace(stack, "t")
	f.Debug(stack, "d")
	f.Info(stack, "i")
	f.Warn(stack, "w")
	f.Error(stack, "e", "cause", "io")

	lines := buf.Lines()
	if len(lines) != 5 {
		t.Fatalf("expected 5 records, got %d", len(lines))
	}
	if !strings.Contains(lines[4], `"cause":"io"`) || !strings.Contains(lines[4], `"level":50`) {
		t.Fatalf("error record malformed: %s", lines[4])
	}
}

func TestPrettyRendering(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := formatter.NewFormatter(
		formatter.WithTime(formatter.TimeFormatOff()),
		formatter.WithWriter(buf),
	)

	fields := fieldmap.FromPairs("alpha", "x", "long_key", "y")
	if err := f.Emit(nil, fields, infoMeta("hello")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := "INFO hello\n" +
		"    alpha:    x\n" +
		"    long_key: y\n"
	if got := buf.Contents(); got != want {
		t.Fatalf("pretty output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestPrettyFieldBlockIsAlphabetical(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := formatter.NewFormatter(
		formatter.WithTime(formatter.TimeFormatOff()),
		formatter.WithWriter(buf),
	)

	fields := fieldmap.FromPairs("zulu", 1, "alpha", 2, "mike", 3)
	if err := f.Emit(nil, fields, infoMeta("sorted")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := "INFO sorted\n" +
		"    alpha: 2\n" +
		"    mike:  3\n" +
		"    zulu:  1\n"
	if got := buf.Contents(); got != want {
		t.Fatalf("pretty output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestPrettyHeaderSkipsDisabledParts(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := formatter.NewFormatter(
		formatter.WithTime(formatter.TimeFormatOff()),
		formatter.WithLevelFormat(formatter.LevelOff),
		formatter.WithWriter(buf),
	)

	if err := f.Emit(nil, fieldmap.New(), infoMeta("just the message")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if got := buf.Contents(); got != "just the message\n" {
		t.Fatalf("header mismatch: %q", got)
	}
}

func TestDerivedFieldAppended(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf,
		formatter.WithDerivedField("shout", `upper(message)`),
	)

	if err := f.Emit(nil, fieldmap.FromPairs("k", 1), infoMeta("hi")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	want := `{"k":1,"shout":"HI","level":30,"message":"hi"}`
	if got := singleLine(t, buf); got != want {
		t.Fatalf("record mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestDerivedFieldSeesRecordFields(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf,
		formatter.WithDerivedField("slow", `fields.ms > 100`),
	)

	if err := f.Emit(nil, fieldmap.FromPairs("ms", 250), infoMeta("req")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if got := singleLine(t, buf); !strings.Contains(got, `"slow":true`) {
		t.Fatalf("expected derived boolean, got %s", got)
	}
}

func TestBadDerivedExpressionIsDropped(t *testing.T) {
	buf := sinks.NewBufferSink()
	f := newJSONFormatter(buf,
		formatter.WithDerivedField("bad", `((( nope`),
	)

	if err := f.Emit(nil, fieldmap.New(), infoMeta("still works")); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if got := singleLine(t, buf); strings.Contains(got, "bad") {
		t.Fatalf("uncompilable derived field leaked into the record: %s", got)
	}
}

type failingSink struct{}

var errSinkFull = errors.New("disk full")

func (failingSink) Write([]byte) error { return errSinkFull }
func (failingSink) Close() error       { return nil }

func TestWriteFailureIsReturned(t *testing.T) {
	f := formatter.NewFormatter(
		formatter.WithJSON(true),
		formatter.WithWriter(failingSink{}),
	)

	err := f.Emit(nil, fieldmap.New(), infoMeta("doomed"))
	if !errors.Is(err, errSinkFull) {
		t.Fatalf("expected the sink error to surface, got %v", err)
	}
}

func TestSpanRegistryLifecycle(t *testing.T) {
	f := newJSONFormatter(sinks.NewBufferSink())

	node := f.NewSpan("job", "k", 1)
	if _, ok := f.LookupSpan(node.ID()); !ok {
		t.Fatal("span missing from registry after NewSpan")
	}

	stack := f.NewStack()
	entered := stack.Enter(node)

	if err := f.CloseSpan(node.ID()); err == nil {
		t.Fatal("expected close of an entered span to fail")
	}

	entered.Exit()
	if err := f.CloseSpan(node.ID()); err != nil {
		t.Fatalf("close after exit failed: %v", err)
	}
	if _, ok := f.LookupSpan(node.ID()); ok {
		t.Fatal("span still registered after close")
	}
}
