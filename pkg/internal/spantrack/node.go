// Package spantrack stores per-span field state and the per-context stack of
// currently entered spans. A Node carries the fields a span declared; entering
// it on a Stack computes the effective field set and composed name visible to
// events emitted inside it. One Stack belongs to exactly one execution
// context; carrying it across goroutines is the caller's responsibility via
// Fork or context.Context, never by sharing.
package spantrack

import (
	"sync"

	"github.com/google/uuid"
	"github.com/joeydtaylor/tracewire/pkg/internal/fieldmap"
)

// Node is the storage attached to one open span: its declared name, its own
// fields, and the effective state computed the last time it was entered.
// Nodes are created on span creation and dropped on span close.
type Node struct {
	mu              sync.Mutex
	id              string
	name            string
	ownFields       *fieldmap.FieldMap
	effectiveFields *fieldmap.FieldMap
	effectiveName   string
	entered         bool
}

// NewNode creates a span node with the given declared name and fields. A nil
// fields map is treated as empty.
func NewNode(name string, fields *fieldmap.FieldMap) *Node {
	if fields == nil {
		fields = fieldmap.New()
	}
	return &Node{
		id:        uuid.NewString(),
		name:      name,
		ownFields: fields,
	}
}

// ID returns the node's opaque unique identifier.
func (n *Node) ID() string { return n.id }

// Name returns the span's declared name.
func (n *Node) Name() string { return n.name }

// SetField records or replaces one of the span's own fields. Changes made
// between entries are picked up the next time the node is entered; they do
// not retroactively alter the effective state of a currently open entry.
func (n *Node) SetField(key string, value fieldmap.Value) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ownFields.Set(key, value)
}

// OwnFields returns a copy of the span's declared fields.
func (n *Node) OwnFields() *fieldmap.FieldMap {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ownFields.Clone()
}

// EffectiveFields returns the merged field state computed at the most recent
// entry, or the node's own fields if it has never been entered.
func (n *Node) EffectiveFields() *fieldmap.FieldMap {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.effectiveFields == nil {
		return n.ownFields.Clone()
	}
	return n.effectiveFields
}

// EffectiveName returns the composed span name from the most recent entry.
func (n *Node) EffectiveName() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.effectiveName
}

func (n *Node) setEffective(fields *fieldmap.FieldMap, name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.effectiveFields = fields
	n.effectiveName = name
	n.entered = true
}

func (n *Node) setExited() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entered = false
}

func (n *Node) isEntered() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.entered
}
