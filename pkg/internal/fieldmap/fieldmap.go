// Package fieldmap provides the ordered key/value storage used by the
// formatting engine. A FieldMap preserves insertion order for deterministic
// output and supports merging a child map onto a parent under a configurable
// join policy, which is how nested span fields inherit and override.
package fieldmap

// Entry is a single key/value pair inside a FieldMap.
type Entry struct {
	Key   string
	Value Value
}

// FieldMap is an insertion-ordered mapping from field key to Value. Keys are
// unique; replacing a key keeps its original position. The zero value is not
// usable, construct with New.
type FieldMap struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty FieldMap.
func New() *FieldMap {
	return &FieldMap{index: make(map[string]int)}
}

// FromPairs builds a FieldMap from alternating key/value arguments. Non-string
// keys and a trailing orphan value are skipped, values are converted with Any.
func FromPairs(keysAndValues ...interface{}) *FieldMap {
	m := New()
	limit := len(keysAndValues)
	if limit%2 != 0 {
		limit--
	}
	for i := 0; i < limit; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok || key == "" {
			continue
		}
		m.Set(key, Any(keysAndValues[i+1]))
	}
	return m
}

// Set inserts or replaces a key. An existing key keeps its insertion
// position; a new key is appended.
func (m *FieldMap) Set(key string, value Value) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (m *FieldMap) Get(key string) (Value, bool) {
	if i, ok := m.index[key]; ok {
		return m.entries[i].Value, true
	}
	return Value{}, false
}

// Delete removes a key if present, preserving the order of the remaining
// entries.
func (m *FieldMap) Delete(key string) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
}

// Len returns the number of entries.
func (m *FieldMap) Len() int { return len(m.entries) }

// Entries returns the entries in insertion order. The returned slice is the
// map's backing storage; callers must not mutate it.
func (m *FieldMap) Entries() []Entry { return m.entries }

// Clone returns an independent copy of the map.
func (m *FieldMap) Clone() *FieldMap {
	out := &FieldMap{
		entries: make([]Entry, len(m.entries)),
		index:   make(map[string]int, len(m.index)),
	}
	copy(out.entries, m.entries)
	for k, v := range m.index {
		out.index[k] = v
	}
	return out
}

// Merge produces a new FieldMap holding m's entries with other's entries
// applied on top under policy. Keys only in other are appended in their own
// order; keys present on both sides are either overwritten in place or, when
// the policy joins that key and both values are string-shaped, concatenated
// as parent + separator + child. Non-string joins fall back to overwrite.
// Merge never mutates its receiver or its argument.
func (m *FieldMap) Merge(other *FieldMap, policy JoinPolicy) *FieldMap {
	out := m.Clone()
	if other == nil {
		return out
	}
	for _, e := range other.entries {
		existing, present := out.Get(e.Key)
		if !present {
			out.Set(e.Key, e.Value)
			continue
		}
		if sep, join := policy.joinFor(e.Key); join {
			parent, pok := existing.StringRepresentation()
			child, cok := e.Value.StringRepresentation()
			if pok && cok {
				out.Set(e.Key, String(parent+sep+child))
				continue
			}
		}
		out.Set(e.Key, e.Value)
	}
	return out
}
