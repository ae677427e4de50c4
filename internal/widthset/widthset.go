// Package widthset provides a mutable multiset of column widths with fast
// maximum queries. One Set is shared by every line in a run that agrees on
// a column's width; inserting and removing per-line contributions keeps the
// reported maximum exact across edits.
package widthset

import (
	"container/heap"
	"errors"
)

// Errors returned by multiset operations. Both indicate broken bookkeeping
// in the caller rather than a recoverable condition: a value is only ever
// removed while its contributing line is tracked, and a set is destroyed
// before its last value is removed.
var (
	ErrNotFound = errors.New("value not present in set")
	ErrEmpty    = errors.New("set is empty")
)

// Set is a multiset of widths supporting insert, exact-value removal and
// maximum queries, each in O(log n) amortized time.
//
// Removal is lazy: removed values stay in the heap, marked stale, and are
// discarded when they surface during a Max call or when stale entries
// outnumber live ones. Removing an arbitrary element from a binary heap
// array without reheapifying would corrupt the heap order; the stale
// counts avoid that while keeping removal cheap.
type Set struct {
	heap  maxHeap
	live  map[int]int // value -> live occurrences
	stale map[int]int // value -> heap entries pending removal
	size  int         // total live occurrences
	dead  int         // total stale heap entries
}

// New creates an empty width multiset.
func New() *Set {
	return &Set{
		live:  make(map[int]int),
		stale: make(map[int]int),
	}
}

// Len returns the number of live values in the set.
func (s *Set) Len() int {
	return s.size
}

// Insert adds one occurrence of value to the set.
func (s *Set) Insert(value int) {
	heap.Push(&s.heap, value)
	s.live[value]++
	s.size++
}

// Remove removes one occurrence of value from the set.
// Returns ErrNotFound if no live occurrence of value exists.
func (s *Set) Remove(value int) error {
	if s.live[value] == 0 {
		return ErrNotFound
	}
	s.live[value]--
	if s.live[value] == 0 {
		delete(s.live, value)
	}
	s.stale[value]++
	s.size--
	s.dead++

	if s.dead > s.size {
		s.compact()
	}
	return nil
}

// Max returns the largest live value in the set.
// Returns ErrEmpty if the set has no live values.
func (s *Set) Max() (int, error) {
	for s.heap.Len() > 0 {
		top := s.heap[0]
		if s.stale[top] == 0 {
			return top, nil
		}
		s.stale[top]--
		if s.stale[top] == 0 {
			delete(s.stale, top)
		}
		s.dead--
		heap.Pop(&s.heap)
	}
	return 0, ErrEmpty
}

// compact rebuilds the heap from the live occurrences, dropping all stale
// entries. Runs when stale entries outnumber live ones, so the total work
// is amortized against the removals that caused it.
func (s *Set) compact() {
	s.heap = s.heap[:0]
	for value, n := range s.live {
		for i := 0; i < n; i++ {
			s.heap = append(s.heap, value)
		}
	}
	heap.Init(&s.heap)
	for value := range s.stale {
		delete(s.stale, value)
	}
	s.dead = 0
}

// maxHeap is a max-ordered binary heap of ints.
type maxHeap []int

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap) Push(x any) {
	*h = append(*h, x.(int))
}

func (h *maxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
