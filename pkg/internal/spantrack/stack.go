package spantrack

import (
	"sync"

	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
	"github.com/joeydtaylor/tracewire/pkg/internal/types"
)

// Stack is the ordered sequence of currently entered spans for one execution
// context, root first. Push on enter, pop on exit, strictly LIFO. A Stack
// must never be shared between concurrently executing contexts; hand one to
// another goroutine with Fork, or carry it in a context.Context across an
// explicit suspension point.
type Stack struct {
	mu     sync.Mutex
	nodes  []*Node
	join   fieldmap.JoinPolicy
	format Format
}

// NewStack creates an empty span stack with the given options. The defaults
// are overwrite-on-collision fields and "::"-concatenated span names.
func NewStack(options ...types.Option[*Stack]) *Stack {
	s := &Stack{
		join:   fieldmap.OverwriteAll(),
		format: Concatenate("::"),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// WithJoinPolicy sets the field merge policy applied when a span is entered.
func WithJoinPolicy(policy fieldmap.JoinPolicy) types.Option[*Stack] {
	return func(s *Stack) {
		s.join = policy
	}
}

// WithFormat sets the span-name composition policy.
func WithFormat(format Format) types.Option[*Stack] {
	return func(s *Stack) {
		s.format = format
	}
}

// Entered is the scoped handle returned by Enter. Releasing it pops the span;
// Exit is safe to call on every return path and is a no-op after the first
// call.
type Entered struct {
	once  sync.Once
	stack *Stack
	node  *Node
	err   error
}

// Exit pops the entered span from its stack. Calling Exit more than once is
// harmless; only the first call touches the stack.
func (e *Entered) Exit() error {
	e.once.Do(func() {
		e.err = e.stack.Exit(e.node.ID())
	})
	return e.err
}

// Enter computes the node's effective fields and composed name from the
// current top of the stack, then pushes it. The effective state is computed
// once per entry, so events cost one merge regardless of depth, and a node
// re-entered after its fields changed picks the changes up here.
func (s *Stack) Enter(node *Node) *Entered {
	s.mu.Lock()
	defer s.mu.Unlock()

	own := node.OwnFields()
	if top := s.topLocked(); top != nil {
		node.setEffective(top.EffectiveFields().Merge(own, s.join), s.format.compose(top.EffectiveName(), node.Name()))
	} else {
		node.setEffective(own, s.format.compose("", node.Name()))
	}
	s.nodes = append(s.nodes, node)
	return &Entered{stack: s, node: node}
}

// Exit pops the span with the given id. If that span is not the current top
// the stack is left untouched and a StackMisuseError is returned.
func (s *Stack) Exit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	top := s.topLocked()
	if top == nil {
		return &StackMisuseError{Op: "exit", SpanID: id}
	}
	if top.ID() != id {
		return &StackMisuseError{Op: "exit", SpanID: id, TopID: top.ID()}
	}
	s.nodes = s.nodes[:len(s.nodes)-1]
	top.setExited()
	return nil
}

// CurrentEffective returns the effective fields and composed name visible to
// an event emitted right now. Outside any span it returns an empty map and an
// empty name.
func (s *Stack) CurrentEffective() (*fieldmap.FieldMap, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	top := s.topLocked()
	if top == nil {
		return fieldmap.New(), ""
	}
	return top.EffectiveFields(), top.EffectiveName()
}

// Depth returns the number of currently entered spans.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}

// Fork returns a new Stack for a different execution context that starts with
// the same entered spans. The fork and the original evolve independently;
// this is the supported way to continue a span tree on another goroutine.
func (s *Stack) Fork() *Stack {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &Stack{
		nodes:  make([]*Node, len(s.nodes)),
		join:   s.join,
		format: s.format,
	}
	copy(out.nodes, s.nodes)
	return out
}

func (s *Stack) topLocked() *Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}
