package spantrack

import (
	"fmt"

	"sync"

	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
)

// Registry tracks open span nodes by id for instrumentation collaborators
// that address spans by identifier rather than by handle. Create registers a
// node, Close drops it; lifetime of the node is the lifetime of the span.
type Registry struct {
	mu    sync.Mutex
	nodes map[string]*Node
}

// NewRegistry returns an empty span registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Create builds a node for a newly created span and registers it.
func (r *Registry) Create(name string, fields *fieldmap.FieldMap) *Node {
	node := NewNode(name, fields)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[node.ID()] = node
	return node
}

// Lookup returns the open node with the given id.
func (r *Registry) Lookup(id string) (*Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	node, ok := r.nodes[id]
	return node, ok
}

// Close drops the node with the given id. Closing a span that is still
// entered on some stack is a misuse: the node is kept and a StackMisuseError
// is returned, since dropping it would orphan the entry.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.nodes[id]
	if !ok {
		return fmt.Errorf("span %s is not registered", id)
	}
	if node.isEntered() {
		return &StackMisuseError{Op: "close", SpanID: id, TopID: id}
	}
	delete(r.nodes, id)
	return nil
}

// Len returns the number of open spans.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}
