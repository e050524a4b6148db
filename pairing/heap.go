// Package pairing implements a persistent pairing heap: a mergeable
// min-priority queue ordered by key. A nil *Heap is the empty heap, and
// every operation returns a new heap without modifying its inputs.
package pairing

import "golang.org/x/exp/constraints"

// Heap is a pairing heap node. Ordering is by key only; the relative order
// of entries with equal keys is unspecified.
type Heap[K constraints.Ordered, V any] struct {
	key      K
	value    V
	children []*Heap[K, V]
}

// Entry pairs a key with its value.
type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Empty returns the empty heap.
func Empty[K constraints.Ordered, V any]() *Heap[K, V] { return nil }

// Singleton returns a heap holding one entry.
func Singleton[K constraints.Ordered, V any](key K, value V) *Heap[K, V] {
	return &Heap[K, V]{key: key, value: value}
}

// Merge melds two heaps: the root with the smaller key wins and the losing
// root becomes its newest child.
func Merge[K constraints.Ordered, V any](a, b *Heap[K, V]) *Heap[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.key < a.key {
		a, b = b, a
	}
	kids := make([]*Heap[K, V], 0, len(a.children)+1)
	kids = append(kids, b)
	kids = append(kids, a.children...)
	return &Heap[K, V]{key: a.key, value: a.value, children: kids}
}

// Insert returns the heap with one more entry.
func (h *Heap[K, V]) Insert(key K, value V) *Heap[K, V] {
	return Merge(Singleton(key, value), h)
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[K, V]) IsEmpty() bool { return h == nil }

// FindMin returns the minimum entry. The third result is false on the
// empty heap.
func (h *Heap[K, V]) FindMin() (K, V, bool) {
	if h == nil {
		var k K
		var v V
		return k, v, false
	}
	return h.key, h.value, true
}

// DeleteMin returns the heap without its minimum entry: adjacent children
// are merged pairwise left to right, then the pair results are folded
// together. DeleteMin on the empty heap is the empty heap.
func (h *Heap[K, V]) DeleteMin() *Heap[K, V] {
	if h == nil {
		return nil
	}
	kids := h.children
	pairs := make([]*Heap[K, V], 0, (len(kids)+1)/2)
	for i := 0; i+1 < len(kids); i += 2 {
		pairs = append(pairs, Merge(kids[i], kids[i+1]))
	}
	if len(kids)%2 == 1 {
		pairs = append(pairs, kids[len(kids)-1])
	}
	var out *Heap[K, V]
	for _, p := range pairs {
		out = Merge(out, p)
	}
	return out
}

// ToSortedList extracts every entry in ascending key order.
func (h *Heap[K, V]) ToSortedList() []Entry[K, V] {
	var out []Entry[K, V]
	for cur := h; cur != nil; cur = cur.DeleteMin() {
		out = append(out, Entry[K, V]{Key: cur.key, Value: cur.value})
	}
	return out
}
