package kwargs

// Mapping is the keyword container supplied by the host at the call
// boundary. Keys returns the remaining keys in insertion order, which is
// what unknown-keyword reporting depends on; Go's built-in map cannot
// provide that, so the container is an interface.
type Mapping interface {
	Lookup(key Key) (Value, bool)
	Delete(key Key)
	Len() int
	Keys() []Key
}

// OrderedMap is an insertion-ordered Mapping for hosts (and tests) that do
// not bring their own container.
type OrderedMap struct {
	entries map[Key]Value
	order   []Key
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{entries: map[Key]Value{}}
}

// Set stores value under key. Overwriting an existing key keeps its
// original position in the iteration order.
func (m *OrderedMap) Set(key Key, value Value) {
	if _, ok := m.entries[key]; !ok {
		m.order = append(m.order, key)
	}
	m.entries[key] = value
}

// Lookup returns the value stored under key, if any.
func (m *OrderedMap) Lookup(key Key) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *OrderedMap) Delete(key Key) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.entries) }

// Keys returns the remaining keys in insertion order.
func (m *OrderedMap) Keys() []Key {
	keys := make([]Key, len(m.order))
	copy(keys, m.order)
	return keys
}
