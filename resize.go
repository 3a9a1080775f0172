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

package flathash

// rehash grows or shrinks to target = max(minSlotCount,
// nextPow2(max(requestedCap, 2*size))). A no-op if the target matches the
// current slotCount.
func (t *table[K, V]) rehash(requestedCap int) {
	target := nextPow2(max(requestedCap, 2*t.size))
	if target < t.minSlotCount {
		target = t.minSlotCount
	}
	if target == t.slotCount {
		return
	}
	t.resizeTo(target)
}

// reserve guarantees that the table can hold up to n distinct keys in
// total without a further rehash.
func (t *table[K, V]) reserve(n int) {
	t.rehash(2 * n)
}

// resizeTo allocates a fresh slotCount-sized array and tail-propagates
// every occupied element of the old array into it. Rehash never observes
// duplicate keys, so no equality check is needed.
func (t *table[K, V]) resizeTo(slotCount int) {
	old := t.slots
	t.slotCount = slotCount
	t.slots = makeSlots[K, V](slotCount)

	for i := 0; i < len(old)-1; i++ {
		e := &old[i]
		if e.dist == 0 {
			continue
		}
		t.tailPropagate(e.key, e.value, t.home(t.hash(e.key)), 1)
	}
}
