// Copyright 2019 Peter Mattis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License. See the AUTHORS file
// for names of contributors.

// Package flathash implements an open-addressed Robin Hood hash table:
// a flat slot array with backward-shift deletion and a trailing sentinel
// slot that doubles as the end-of-iteration marker. Set and Map are thin
// facades over the same engine.
package flathash

const defaultMinSlotCount = 32

// table is the shared flat-array Robin Hood engine behind Set and Map.
// Set instantiates it with V = struct{}.
type table[K comparable, V any] struct {
	slots        []slot[K, V]
	size         int
	slotCount    int // power of two, not counting the trailing sentinel
	minSlotCount int
	hash         Hasher[K]
}

func newTable[K comparable, V any](hash Hasher[K], minSlotCount int) *table[K, V] {
	if minSlotCount < 1 {
		minSlotCount = defaultMinSlotCount
	}
	minSlotCount = nextPow2(minSlotCount)
	t := &table[K, V]{
		slotCount:    minSlotCount,
		minSlotCount: minSlotCount,
		hash:         hash,
	}
	t.slots = makeSlots[K, V](t.slotCount)
	return t
}

func nextPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (t *table[K, V]) capacity() int { return t.slotCount / 2 }

func (t *table[K, V]) mask() int { return t.slotCount - 1 }

// home is the ideal slot index for a given hash: the low bits, since
// slotCount is a power of two.
func (t *table[K, V]) home(h uint64) int { return int(h) & t.mask() }

func (t *table[K, V]) clone() *table[K, V] {
	nt := &table[K, V]{
		slots:        make([]slot[K, V], len(t.slots)),
		size:         t.size,
		slotCount:    t.slotCount,
		minSlotCount: t.minSlotCount,
		hash:         t.hash,
	}
	copy(nt.slots, t.slots)
	return nt
}

// insertOrLocate finds k's slot, inserting it with value v if absent. It
// returns the index of k (whether freshly inserted or already present) and
// whether it was newly inserted.
func (t *table[K, V]) insertOrLocate(k K, v V) (int, bool) {
	h := t.hash(k)
	for {
		i := t.home(h)
		d := uint32(1)
		for {
			e := &t.slots[i]
			if e.dist == 0 || e.dist < d {
				if t.size+1 > t.capacity() {
					t.rehash(2 * t.slotCount)
					break // outer loop retries with the fresh home
				}
				t.size++
				if e.dist == 0 {
					*e = slot[K, V]{dist: d, key: k, value: v}
				} else {
					displaced := *e
					*e = slot[K, V]{dist: d, key: k, value: v}
					t.tailPropagate(displaced.key, displaced.value, (i+1)&t.mask(), displaced.dist+1)
				}
				return i, true
			}
			if e.dist == d && e.key == k {
				return i, false
			}
			i = (i + 1) & t.mask()
			d++
		}
	}
}

// tailPropagate walks forward from i placing (k, v) with the given
// starting distance, displacing poorer entries along the way. Used both
// after a Robin Hood swap during insertion and while replaying elements
// into a freshly rehashed array; neither caller needs a capacity check
// because the element count does not grow during propagation.
func (t *table[K, V]) tailPropagate(k K, v V, i int, dist uint32) {
	pending := slot[K, V]{dist: dist, key: k, value: v}
	for {
		e := &t.slots[i]
		if e.dist == 0 {
			*e = pending
			return
		}
		if e.dist < pending.dist {
			pending, *e = *e, pending
		}
		i = (i + 1) & t.mask()
		pending.dist++
	}
}

// lookup finds k's slot. The Robin Hood invariant lets it stop the instant
// it meets a slot poorer than the probe distance accumulated so far.
func (t *table[K, V]) lookup(k K) (int, bool) {
	h := t.hash(k)
	i := t.home(h)
	d := uint32(1)
	for {
		e := &t.slots[i]
		if e.dist == 0 || e.dist < d {
			return 0, false
		}
		if e.key == k {
			return i, true
		}
		i = (i + 1) & t.mask()
		d++
	}
}
