// Package hashmap implements a separate-chaining hash table with a lazy,
// collision-triggered growth policy. It backs the dynamic message field
// index but is generic over key and value types.
package hashmap

// EqualFunc reports whether two keys are equal.
type EqualFunc[K any] func(a, b K) bool

// HashFunc computes a hash value for a key. The table reduces the hash
// modulo its current capacity to pick a bucket.
type HashFunc[K any] func(key K) uint64

// Entry is a single key/value pair stored in the table.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// node is one link of a bucket's collision chain.
type node[K, V any] struct {
	entry Entry[K, V]
	next  *node[K, V]
}

// Map is a hash table using separate chaining for collisions. Each bucket
// holds a singly linked chain of entries; lookups scan the chain with the
// configured equality function.
//
// Growth is lazy: the table doubles its bucket count only when a new key is
// about to collide while the table is saturated (size == capacity) and
// doubling would actually separate keys in the affected chain. This is not
// a load-factor policy.
//
// A Map is not safe for concurrent use.
type Map[K, V any] struct {
	capacity int
	size     int
	table    []*node[K, V]
	equal    EqualFunc[K]
	hash     HashFunc[K]
}

// New creates a table with the given initial bucket count. Capacities below
// one are clamped to one. Both functions must be non-nil.
func New[K, V any](capacity int, equal EqualFunc[K], hash HashFunc[K]) *Map[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Map[K, V]{
		capacity: capacity,
		table:    make([]*node[K, V], capacity),
		equal:    equal,
		hash:     hash,
	}
}

// Size returns the number of entries in the table.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int {
	return m.capacity
}

// Empty reports whether the table holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	for it := m.table[m.offset(key)]; it != nil; it = it.next {
		if m.equal(it.entry.Key, key) {
			return it.entry.Value, true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether the table holds an entry for key.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put inserts or updates the value for key.
func (m *Map[K, V]) Put(key K, value V) {
	offset := m.offset(key)
	if m.table[offset] == nil {
		m.table[offset] = &node[K, V]{entry: Entry[K, V]{Key: key, Value: value}}
		m.size++
		return
	}
	// key exists or hash collision
	for it := m.table[offset]; it != nil; it = it.next {
		if m.equal(it.entry.Key, key) {
			it.entry.Value = value
			return
		}
	}
	if m.rehashRequired(key) {
		m.rehash(2 * m.capacity)
		m.Put(key, value)
		return
	}
	m.table[offset] = &node[K, V]{
		entry: Entry[K, V]{Key: key, Value: value},
		next:  m.table[offset],
	}
	m.size++
}

// Remove deletes the entry for key and returns it to the caller.
func (m *Map[K, V]) Remove(key K) (Entry[K, V], bool) {
	offset := m.offset(key)
	var prev *node[K, V]
	for it := m.table[offset]; it != nil; it = it.next {
		if m.equal(it.entry.Key, key) {
			if prev == nil {
				m.table[offset] = it.next
			} else {
				prev.next = it.next
			}
			m.size--
			return it.entry, true
		}
		prev = it
	}
	var zero Entry[K, V]
	return zero, false
}

// Keys returns a snapshot of all keys in bucket order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, chain := range m.table {
		for it := chain; it != nil; it = it.next {
			keys = append(keys, it.entry.Key)
		}
	}
	return keys
}

// Values returns a snapshot of all values in bucket order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, chain := range m.table {
		for it := chain; it != nil; it = it.next {
			values = append(values, it.entry.Value)
		}
	}
	return values
}

// Entries returns a snapshot of all entries in bucket order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	for _, chain := range m.table {
		for it := chain; it != nil; it = it.next {
			entries = append(entries, it.entry)
		}
	}
	return entries
}

// Clear removes all entries, keeping the current capacity.
func (m *Map[K, V]) Clear() {
	for i := range m.table {
		m.table[i] = nil
	}
	m.size = 0
}

func (m *Map[K, V]) offset(key K) int {
	return int(m.hash(key) % uint64(m.capacity))
}

// rehashRequired reports whether the table must grow before key can be
// inserted. Growth is needed only when the table is saturated and some key
// in the target chain would land in a different bucket than key at double
// capacity.
func (m *Map[K, V]) rehashRequired(key K) bool {
	chain := m.table[m.offset(key)]
	if chain == nil {
		return false
	}
	newKeyOffset := m.hash(key) % uint64(2*m.capacity)
	for it := chain; it != nil; it = it.next {
		presentKeyOffset := m.hash(it.entry.Key) % uint64(2*m.capacity)
		if newKeyOffset != presentKeyOffset && m.capacity == m.size {
			return true
		}
	}
	return false
}

// rehash resizes the bucket array and redistributes all entries.
func (m *Map[K, V]) rehash(capacity int) {
	entries := m.Entries()
	m.table = make([]*node[K, V], capacity)
	m.capacity = capacity
	m.size = 0
	for _, entry := range entries {
		m.Put(entry.Key, entry.Value)
	}
}
