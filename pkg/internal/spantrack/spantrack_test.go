package spantrack_test

import (
	"errors"
	"testing"

	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/spantrack"
)

func TestEnterComputesConcatenatedName(t *testing.T) {
	stack := spantrack.NewStack(spantrack.WithFormat(spantrack.Concatenate("::")))

	outer := stack.Enter(spantrack.NewNode("math", nil))
	defer outer.Exit()
	inner := stack.Enter(spantrack.NewNode("add", nil))
	defer inner.Exit()

	if _, name := stack.CurrentEffective(); name != "math::add" {
		t.Fatalf("expected math::add, got %q", name)
	}
}

func TestEnterOverwriteKeepsInnermostName(t *testing.T) {
	stack := spantrack.NewStack(spantrack.WithFormat(spantrack.Overwrite()))

	outer := stack.Enter(spantrack.NewNode("math", nil))
	defer outer.Exit()
	inner := stack.Enter(spantrack.NewNode("add", nil))
	defer inner.Exit()

	if _, name := stack.CurrentEffective(); name != "add" {
		t.Fatalf("expected add, got %q", name)
	}
}

func TestEnterOffSuppressesName(t *testing.T) {
	stack := spantrack.NewStack(spantrack.WithFormat(spantrack.Off()))

	entered := stack.Enter(spantrack.NewNode("math", nil))
	defer entered.Exit()

	if _, name := stack.CurrentEffective(); name != "" {
		t.Fatalf("expected empty name, got %q", name)
	}
}

func TestUnnamedScopeLeavesParentName(t *testing.T) {
	stack := spantrack.NewStack(spantrack.WithFormat(spantrack.Concatenate("::")))

	outer := stack.Enter(spantrack.NewNode("request", nil))
	defer outer.Exit()
	scope := stack.Enter(spantrack.NewNode("", fieldmap.FromPairs("k", 1)))
	defer scope.Exit()

	if _, name := stack.CurrentEffective(); name != "request" {
		t.Fatalf("expected request, got %q", name)
	}
}

func TestNestedSpansInheritFields(t *testing.T) {
	stack := spantrack.NewStack()

	outer := stack.Enter(spantrack.NewNode("math", fieldmap.FromPairs("a", 5)))
	defer outer.Exit()
	inner := stack.Enter(spantrack.NewNode("add", fieldmap.FromPairs("b", 10)))
	defer inner.Exit()

	fields, _ := stack.CurrentEffective()
	if v, ok := fields.Get("a"); !ok || v.Interface() != int64(5) {
		t.Fatalf("inner span lost inherited field a: %v (present=%v)", v.Interface(), ok)
	}
	if v, ok := fields.Get("b"); !ok || v.Interface() != int64(10) {
		t.Fatalf("inner span missing own field b: %v (present=%v)", v.Interface(), ok)
	}
}

func TestChildOverridesInheritedFieldByDefault(t *testing.T) {
	stack := spantrack.NewStack()

	outer := stack.Enter(spantrack.NewNode("outer", fieldmap.FromPairs("field_b", "original")))
	defer outer.Exit()
	inner := stack.Enter(spantrack.NewNode("inner", fieldmap.FromPairs("field_b", "changed")))
	defer inner.Exit()

	fields, _ := stack.CurrentEffective()
	if v, _ := fields.Get("field_b"); v.Interface() != "changed" {
		t.Fatalf("expected child to overwrite, got %v", v.Interface())
	}
}

func TestJoinPolicyConcatenatesCollidingFields(t *testing.T) {
	stack := spantrack.NewStack(spantrack.WithJoinPolicy(fieldmap.JoinKeys("||", "field_b")))

	outer := stack.Enter(spantrack.NewNode("outer", fieldmap.FromPairs("field_b", "original")))
	defer outer.Exit()
	inner := stack.Enter(spantrack.NewNode("inner", fieldmap.FromPairs("field_b", "changed")))
	defer inner.Exit()

	fields, _ := stack.CurrentEffective()
	if v, _ := fields.Get("field_b"); v.Interface() != "original||changed" {
		t.Fatalf("expected joined value, got %v", v.Interface())
	}
}

func TestExitOutOfOrderLeavesStackUntouched(t *testing.T) {
	stack := spantrack.NewStack()

	outer := spantrack.NewNode("outer", nil)
	stack.Enter(outer)
	stack.Enter(spantrack.NewNode("inner", nil))

	err := stack.Exit(outer.ID())
	var misuse *spantrack.StackMisuseError
	if !errors.As(err, &misuse) {
		t.Fatalf("expected StackMisuseError, got %v", err)
	}
	if misuse.Op != "exit" || misuse.SpanID != outer.ID() {
		t.Fatalf("misuse error misreports the operation: %+v", misuse)
	}
	if stack.Depth() != 2 {
		t.Fatalf("failed exit modified the stack: depth=%d", stack.Depth())
	}
	if _, name := stack.CurrentEffective(); name != "outer::inner" {
		t.Fatalf("failed exit changed the effective name: %q", name)
	}
}

func TestExitOnEmptyStackFails(t *testing.T) {
	stack := spantrack.NewStack()
	if err := stack.Exit("nope"); err == nil {
		t.Fatal("expected an error exiting an empty stack")
	}
}

func TestEnteredExitIsIdempotent(t *testing.T) {
	stack := spantrack.NewStack()
	entered := stack.Enter(spantrack.NewNode("once", nil))

	if err := entered.Exit(); err != nil {
		t.Fatalf("first exit failed: %v", err)
	}
	if err := entered.Exit(); err != nil {
		t.Fatalf("second exit should be a no-op, got %v", err)
	}
	if stack.Depth() != 0 {
		t.Fatalf("expected empty stack, depth=%d", stack.Depth())
	}
}

func TestReentryPicksUpFieldChanges(t *testing.T) {
	stack := spantrack.NewStack()
	node := spantrack.NewNode("job", fieldmap.FromPairs("attempt", 1))

	first := stack.Enter(node)
	first.Exit()

	node.SetField("attempt", fieldmap.Int(2))

	second := stack.Enter(node)
	defer second.Exit()

	fields, _ := stack.CurrentEffective()
	if v, _ := fields.Get("attempt"); v.Interface() != int64(2) {
		t.Fatalf("re-entry did not recompute fields: attempt=%v", v.Interface())
	}
}

func TestForkEvolvesIndependently(t *testing.T) {
	stack := spantrack.NewStack()
	outer := stack.Enter(spantrack.NewNode("base", fieldmap.FromPairs("id", 1)))
	defer outer.Exit()

	fork := stack.Fork()
	forked := fork.Enter(spantrack.NewNode("worker", nil))
	defer forked.Exit()

	if stack.Depth() != 1 {
		t.Fatalf("fork leaked into the original: depth=%d", stack.Depth())
	}
	if _, name := fork.CurrentEffective(); name != "base::worker" {
		t.Fatalf("fork lost inherited state: %q", name)
	}
}

func TestRegistryLifecycle(t *testing.T) {
	registry := spantrack.NewRegistry()
	node := registry.Create("job", fieldmap.FromPairs("a", 1))

	if got, ok := registry.Lookup(node.ID()); !ok || got != node {
		t.Fatal("lookup after create failed")
	}
	if err := registry.Close(node.ID()); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, ok := registry.Lookup(node.ID()); ok {
		t.Fatal("node still registered after close")
	}
	if err := registry.Close(node.ID()); err == nil {
		t.Fatal("expected an error closing an unregistered span")
	}
}

func TestRegistryRefusesCloseOfEnteredSpan(t *testing.T) {
	registry := spantrack.NewRegistry()
	stack := spantrack.NewStack()

	node := registry.Create("job", nil)
	entered := stack.Enter(node)

	err := registry.Close(node.ID())
	var misuse *spantrack.StackMisuseError
	if !errors.As(err, &misuse) {
		t.Fatalf("expected StackMisuseError, got %v", err)
	}
	if _, ok := registry.Lookup(node.ID()); !ok {
		t.Fatal("refused close still dropped the node")
	}

	entered.Exit()
	if err := registry.Close(node.ID()); err != nil {
		t.Fatalf("close after exit failed: %v", err)
	}
}
