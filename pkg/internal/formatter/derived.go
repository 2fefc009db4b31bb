package formatter

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
)

type pendingDerived struct {
	name       string
	expression string
}

type derivedField struct {
	name    string
	program *vm.Program
}

// compileDerived compiles the expressions collected by WithDerivedField.
// Expressions that do not compile are reported and dropped; a bad expression
// must not take the formatter down with it.
func (f *Formatter) compileDerived() {
	for _, pending := range f.pendingDerived {
		program, err := expr.Compile(pending.expression)
		if err != nil {
			f.NotifyLoggers(types.WarnLevel, "derived field dropped",
				"field", pending.name, "expression", pending.expression, "error", err)
			continue
		}
		f.derived = append(f.derived, derivedField{name: pending.name, program: program})
	}
	f.pendingDerived = nil
}

// applyDerived evaluates each derived field against the merged record and
// appends the results. Evaluation failures skip the field for this event
// only.
func (f *Formatter) applyDerived(merged *fieldmap.FieldMap, meta *Metadata, spanName, message string) {
	if len(f.derived) == 0 {
		return
	}

	fields := make(map[string]interface{}, merged.Len())
	for _, e := range merged.Entries() {
		fields[e.Key] = e.Value.Interface()
	}
	env := map[string]interface{}{
		"fields":  fields,
		"message": message,
		"span":    spanName,
		"module":  meta.Module,
		"level":   meta.Level.String(),
	}

	for _, d := range f.derived {
		out, err := vm.Run(d.program, env)
		if err != nil {
			f.NotifyLoggers(types.DebugLevel, "derived field skipped",
				"field", d.name, "error", err)
			continue
		}
		merged.Set(d.name, fieldmap.Any(out))
	}
}
