package anim

// table is a generic container keyed by string id, iterated in
// insertion order. Deterministic iteration keeps update passes
// reproducible: if two active animations ever share a surface, the
// later registration wins every frame instead of flickering.
//
// The engine is single-threaded by contract, so the table carries no
// lock.
type table[T any] struct {
	items map[string]T
	ids   []string
}

// newTable creates an empty table for type T
func newTable[T any]() *table[T] {
	return &table[T]{
		items: make(map[string]T),
		ids:   make([]string, 0, 16),
	}
}

// Set inserts or replaces the value for id. Replacing an existing id
// keeps its iteration slot.
func (t *table[T]) Set(id string, val T) {
	if _, exists := t.items[id]; !exists {
		t.ids = append(t.ids, id)
	}
	t.items[id] = val
}

// Get retrieves the value for id
func (t *table[T]) Get(id string) (T, bool) {
	val, ok := t.items[id]
	return val, ok
}

// Has checks whether id is present
func (t *table[T]) Has(id string) bool {
	_, ok := t.items[id]
	return ok
}

// Remove deletes id, preserving the order of the remaining entries
func (t *table[T]) Remove(id string) {
	if _, exists := t.items[id]; !exists {
		return
	}
	delete(t.items, id)
	for i, other := range t.ids {
		if other == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
}

// RemoveBatch deletes multiple ids in a single pass - O(n+m) vs O(n*m)
// for individual removes
func (t *table[T]) RemoveBatch(ids []string) {
	if len(ids) == 0 || len(t.items) == 0 {
		return
	}

	// Build removal set and delete from map
	toRemove := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, exists := t.items[id]; exists {
			toRemove[id] = struct{}{}
			delete(t.items, id)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	// Single pass compaction of the id slice
	writeIdx := 0
	for _, id := range t.ids {
		if _, remove := toRemove[id]; !remove {
			t.ids[writeIdx] = id
			writeIdx++
		}
	}
	t.ids = t.ids[:writeIdx]
}

// IDs returns all ids in insertion order
func (t *table[T]) IDs() []string {
	result := make([]string, len(t.ids))
	copy(result, t.ids)
	return result
}

// Len returns the number of entries
func (t *table[T]) Len() int {
	return len(t.ids)
}

// Clear removes all entries
func (t *table[T]) Clear() {
	t.items = make(map[string]T)
	t.ids = make([]string, 0, 16)
}
