package flathash

// Set is an open-addressed hash set over comparable keys, backed by the
// flat Robin Hood engine in table.go. The zero Set is not usable; build
// one with NewSet or a type-specific constructor.
type Set[K comparable] struct {
	t *table[K, struct{}]
}

// NewSet constructs an empty Set using hash as its Hasher. hash must be
// pure, stateless, and deterministic for the lifetime of the Set.
func NewSet[K comparable](hash Hasher[K], opts ...Option[K]) *Set[K] {
	c := applyOptions(opts)
	return &Set[K]{t: newTable[K, struct{}](hash, c.minSlotCount)}
}

// NewSetWithCapacity constructs an empty Set sized so that inserting up
// to capacity distinct keys causes no rehash.
func NewSetWithCapacity[K comparable](capacity int, hash Hasher[K], opts ...Option[K]) *Set[K] {
	s := NewSet(hash, opts...)
	s.Reserve(capacity)
	return s
}

// NewSetFromSlice constructs a Set containing every distinct element of
// values.
func NewSetFromSlice[K comparable](values []K, hash Hasher[K], opts ...Option[K]) *Set[K] {
	s := NewSetWithCapacity(len(values), hash, opts...)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// NewStringSet and NewIntSet are convenience constructors for the two
// most common key kinds, wired to the package's default hashers.
func NewStringSet(opts ...Option[string]) *Set[string] {
	return NewSet[string](HashStringSeed0, opts...)
}

func NewIntSet(opts ...Option[int]) *Set[int] {
	return NewSet[int](HashIdentity[int], opts...)
}

// Clone returns a deep copy: a fresh array of the source's slot count
// holding a slot-for-slot copy of the source's layout.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: s.t.clone()}
}

// Swap exchanges the contents of s and other in place. Go has no move
// constructor, so Swap stands in for move-assignment: after a Swap, each
// Set holds what the other used to.
func (s *Set[K]) Swap(other *Set[K]) {
	s.t, other.t = other.t, s.t
}

// Insert adds value if absent. Reports whether it was newly inserted.
func (s *Set[K]) Insert(value K) bool {
	_, inserted := s.t.insertOrLocate(value, struct{}{})
	return inserted
}

// InsertAll inserts every value, ignoring duplicates.
func (s *Set[K]) InsertAll(values ...K) {
	for _, v := range values {
		s.Insert(v)
	}
}

// TryInsert is an alias for Insert: Set has no piecewise-construction
// story, so emplace/try_emplace/insert all collapse to the same
// operation.
func (s *Set[K]) TryInsert(value K) bool { return s.Insert(value) }

// Erase removes key if present. Reports whether a key was removed.
func (s *Set[K]) Erase(key K) bool { return s.t.erase(key) }

// EraseIter removes the element it refers to. Reports whether an element
// was removed (false if it is already the end iterator).
func (s *Set[K]) EraseIter(it It[K, struct{}]) bool {
	if it.Done() {
		return false
	}
	s.t.eraseAt(it.idx)
	return true
}

// EraseRange removes every element from begin up to (not including) end,
// as given by a prior Begin/Find/EqualRange. Returns the number of
// elements removed. Keys are collected before any removal, since erasing
// one element backshifts others and would otherwise invalidate the
// remaining range.
func (s *Set[K]) EraseRange(begin, end It[K, struct{}]) int {
	var keys []K
	for it := begin; it != end && !it.Done(); it = it.Next() {
		keys = append(keys, it.Key())
	}
	for _, k := range keys {
		s.t.erase(k)
	}
	return len(keys)
}

// Clear removes every element and shrinks the backing array to its
// minimum slot count.
func (s *Set[K]) Clear() { s.t.clear() }

// EqualRange returns the range of elements matching key: (Find(key),
// Find(key).Next()) on a hit, or (End(), End()) on a miss. The container
// never holds duplicate keys, so this range holds at most one element.
func (s *Set[K]) EqualRange(key K) (It[K, struct{}], It[K, struct{}]) {
	first := s.Find(key)
	if first.Done() {
		return s.End(), s.End()
	}
	return first, first.Next()
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.t.lookup(key)
	return ok
}

// Count returns 1 if key is present, 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Find returns an iterator to key, or End() on miss.
func (s *Set[K]) Find(key K) It[K, struct{}] {
	if i, ok := s.t.lookup(key); ok {
		return s.t.at(i)
	}
	return s.t.end()
}

// Len reports the number of elements.
func (s *Set[K]) Len() int { return s.t.size }

// Empty reports whether the set holds no elements.
func (s *Set[K]) Empty() bool { return s.t.size == 0 }

// Cap reports the maximum number of elements before a rehash is forced.
func (s *Set[K]) Cap() int { return s.t.capacity() }

// SlotCount reports the power-of-two number of addressable slots, not
// counting the sentinel.
func (s *Set[K]) SlotCount() int { return s.t.slotCount }

// MaxLoadFactor is always 0.5; the policy is fixed, not runtime tunable.
func (s *Set[K]) MaxLoadFactor() float64 { return 0.5 }

// Rehash resizes to a slot count of at least requestedCap (never below
// twice the current size, never below the configured minimum).
func (s *Set[K]) Rehash(requestedCap int) { s.t.rehash(requestedCap) }

// Reserve guarantees that the set can hold up to n distinct keys in total
// without a further rehash.
func (s *Set[K]) Reserve(n int) { s.t.reserve(n) }

// Begin returns an iterator to the first element in slot-array order, or
// End() if the set is empty.
func (s *Set[K]) Begin() It[K, struct{}] { return s.t.begin() }

// End returns the sentinel iterator.
func (s *Set[K]) End() It[K, struct{}] { return s.t.end() }

// Each calls fn for every element in slot-array order. Mutating the set
// from within fn is not supported.
func (s *Set[K]) Each(fn func(K)) {
	for it := s.Begin(); !it.Done(); it = it.Next() {
		fn(it.Key())
	}
}

// Equal reports whether s and other have the same size and every element
// of s is in other (and so, symmetrically, vice versa).
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for it := s.Begin(); !it.Done(); it = it.Next() {
		if !other.Contains(it.Key()) {
			return false
		}
	}
	return true
}
