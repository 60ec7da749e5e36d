package raptor

import "sort"

// indexSet is a scratch set-of-indices with BitSet.nextSetBit-equivalent
// ascending iteration. Nothing in this codebase has a bitset type of its
// own, so this is a small addition grounded directly in
// java.util.BitSet's ascending-scan semantics.
type indexSet struct {
	marked  []bool
	touched []int32
	sorted  bool
}

func newIndexSet(size int) indexSet {
	return indexSet{marked: make([]bool, size), touched: make([]int32, 0, 16), sorted: true}
}

func (self *indexSet) Mark(i int32) {
	if self.marked[i] {
		return
	}
	self.marked[i] = true
	self.touched = append(self.touched, i)
	self.sorted = false
}

func (self *indexSet) IsMarked(i int32) bool {
	return self.marked[i]
}

func (self *indexSet) IsEmpty() bool {
	return len(self.touched) == 0
}

func (self *indexSet) Clear() {
	for _, i := range self.touched {
		self.marked[i] = false
	}
	self.touched = self.touched[:0]
	self.sorted = true
}

func (self *indexSet) ensureSorted() {
	if self.sorted {
		return
	}
	sort.Slice(self.touched, func(i, j int) bool { return self.touched[i] < self.touched[j] })
	self.sorted = true
}

// NextSetBit returns the smallest marked index >= from, mirroring
// java.util.BitSet.nextSetBit. Callers must not mutate the set between the
// first and last call in a single ascending scan (route exploration relies
// on this: it advances "from" past positions its inner loop has already
// consumed without those positions necessarily being marked themselves).
func (self *indexSet) NextSetBit(from int32) (int32, bool) {
	self.ensureSorted()
	pos := sort.Search(len(self.touched), func(i int) bool { return self.touched[i] >= from })
	if pos >= len(self.touched) {
		return 0, false
	}
	return self.touched[pos], true
}
