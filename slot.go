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

// sentinelDist is the distance value reserved for the trailing sentinel
// slot. It is larger than any distance a real probe chain can reach, so
// a stray scan that ignores slotCount still terminates against it.
const sentinelDist = ^uint32(0)

// slot is one cell of the flat array. dist == 0 means empty, dist ==
// sentinelDist marks the one-past-the-end sentinel, anything else means
// occupied with key living dist-1 positions past its ideal home.
type slot[K comparable, V any] struct {
	dist  uint32
	key   K
	value V
}

// makeSlots allocates a fresh backing array of slotCount+1 cells with the
// sentinel already installed at the last position.
func makeSlots[K comparable, V any](slotCount int) []slot[K, V] {
	s := make([]slot[K, V], slotCount+1)
	s[slotCount].dist = sentinelDist
	return s
}
