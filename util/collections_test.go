package util

import "testing"

func TestListAdd(t *testing.T) {
	l := NewList[int](2)
	l.Add(1)
	l.Add(2)
	l.Add(3)
	if l.Length() != 3 {
		t.Errorf("l.Length() = %v; want 3", l.Length())
	}
	if l[0] != 1 || l[1] != 2 || l[2] != 3 {
		t.Errorf("l = %v; want [1 2 3]", l)
	}
}

func TestDictSetGet(t *testing.T) {
	d := NewDict[string, int](4)
	d.Set("a", 1)
	if !d.ContainsKey("a") {
		t.Errorf("d.ContainsKey(a) = false; want true")
	}
	if d.ContainsKey("b") {
		t.Errorf("d.ContainsKey(b) = true; want false")
	}
	if d.Get("a") != 1 {
		t.Errorf("d.Get(a) = %v; want 1", d.Get("a"))
	}
}

func TestOptional(t *testing.T) {
	some := Some(5)
	if !some.HasValue() || some.Value != 5 {
		t.Errorf("Some(5) = %v; want HasValue true, Value 5", some)
	}
	none := None[int]()
	if none.HasValue() {
		t.Errorf("None().HasValue() = true; want false")
	}
}

func TestPriorityQueueOrdersByPriority(t *testing.T) {
	pq := NewPriorityQueue[string, float64](4)
	pq.Enqueue("c", 3)
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 2)

	want := []string{"a", "b", "c"}
	for _, w := range want {
		item, ok := pq.Dequeue()
		if !ok {
			t.Fatalf("pq.Dequeue() ok = false; want true")
		}
		if item != w {
			t.Errorf("pq.Dequeue() = %v; want %v", item, w)
		}
	}
	if _, ok := pq.Dequeue(); ok {
		t.Errorf("pq.Dequeue() ok = true on empty queue; want false")
	}
}
