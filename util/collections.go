package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// array / list
//*******************************************

// Array is a fixed-length, slice-backed collection.
type Array[T any] []T

func NewArray[T any](length int) Array[T] {
	return make(Array[T], length)
}
func (self Array[T]) Length() int {
	return len(self)
}

// List is a growable, slice-backed collection.
type List[T any] []T

func NewList[T any](capacity int) List[T] {
	return make(List[T], 0, capacity)
}
func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}
func (self List[T]) Length() int {
	return len(self)
}

//*******************************************
// dict
//*******************************************

// Dict is a thin, generic alias over Go maps so call sites read the same
// way regardless of whether they hold an Array, a List or a Dict.
type Dict[K comparable, V any] map[K]V

func NewDict[K comparable, V any](capacity int) Dict[K, V] {
	return make(Dict[K, V], capacity)
}
func (self Dict[K, V]) Set(key K, value V) {
	self[key] = value
}
func (self Dict[K, V]) Get(key K) V {
	return self[key]
}
func (self Dict[K, V]) ContainsKey(key K) bool {
	_, ok := self[key]
	return ok
}

//*******************************************
// optional
//*******************************************

type Optional[T any] struct {
	HasVal bool
	Value  T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{HasVal: true, Value: value}
}
func None[T any]() Optional[T] {
	return Optional[T]{}
}
func (self Optional[T]) HasValue() bool {
	return self.HasVal
}

//*******************************************
// tuples
//*******************************************

type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{A: a, B: b, C: c}
}

//*******************************************
// priority queue
//*******************************************

type pqEntry[Item any, Priority constraints.Ordered] struct {
	item     Item
	priority Priority
}

type pqHeap[Item any, Priority constraints.Ordered] []pqEntry[Item, Priority]

func (h pqHeap[Item, Priority]) Len() int            { return len(h) }
func (h pqHeap[Item, Priority]) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h pqHeap[Item, Priority]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pqHeap[Item, Priority]) Push(x interface{}) { *h = append(*h, x.(pqEntry[Item, Priority])) }
func (h *pqHeap[Item, Priority]) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// PriorityQueue is a generic binary min-heap keyed by an ordered priority.
type PriorityQueue[Item any, Priority constraints.Ordered] struct {
	h pqHeap[Item, Priority]
}

func NewPriorityQueue[Item any, Priority constraints.Ordered](capacity int) PriorityQueue[Item, Priority] {
	h := make(pqHeap[Item, Priority], 0, capacity)
	return PriorityQueue[Item, Priority]{h: h}
}
func (self *PriorityQueue[Item, Priority]) Enqueue(item Item, priority Priority) {
	heap.Push(&self.h, pqEntry[Item, Priority]{item: item, priority: priority})
}
func (self *PriorityQueue[Item, Priority]) Dequeue() (Item, bool) {
	if self.h.Len() == 0 {
		var zero Item
		return zero, false
	}
	entry := heap.Pop(&self.h).(pqEntry[Item, Priority])
	return entry.item, true
}
func (self *PriorityQueue[Item, Priority]) Length() int {
	return self.h.Len()
}
