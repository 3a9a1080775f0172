package flathash

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time snapshot of a table's occupancy, useful for
// diagnostics and the flatrepl "stats" command.
type Stats struct {
	Size          int
	SlotCount     int
	Capacity      int
	LoadFactor    float64
	MaxLoadFactor float64
}

func statsOf[K comparable, V any](t *table[K, V]) Stats {
	capacity := t.capacity()
	var load float64
	if t.slotCount > 0 {
		load = float64(t.size) / float64(t.slotCount)
	}
	return Stats{
		Size:          t.size,
		SlotCount:     t.slotCount,
		Capacity:      capacity,
		LoadFactor:    load,
		MaxLoadFactor: 0.5,
	}
}

// String renders a human-readable occupancy summary, e.g. for a REPL
// "stats" command or a debug log line.
func (st Stats) String() string {
	return fmt.Sprintf(
		"size=%s slots=%s capacity=%s load=%.2f/%.2f",
		humanize.Comma(int64(st.Size)),
		humanize.Comma(int64(st.SlotCount)),
		humanize.Comma(int64(st.Capacity)),
		st.LoadFactor,
		st.MaxLoadFactor,
	)
}

// Stats returns a snapshot of s's current occupancy.
func (s *Set[K]) Stats() Stats { return statsOf(s.t) }

// Stats returns a snapshot of m's current occupancy.
func (m *Map[K, V]) Stats() Stats { return statsOf(m.t) }

// String dumps every occupied slot's key and distance, for debugging
// small tables.
func (s *Set[K]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "size: %d\n", s.t.size)
	for i := range s.t.slots {
		e := &s.t.slots[i]
		if e.dist == 0 || e.dist == sentinelDist {
			continue
		}
		fmt.Fprintf(&b, "[%v,dist=%d]\n", e.key, e.dist)
	}
	return b.String()
}

// String dumps every occupied slot's key, value, and distance.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "size: %d\n", m.t.size)
	for i := range m.t.slots {
		e := &m.t.slots[i]
		if e.dist == 0 || e.dist == sentinelDist {
			continue
		}
		fmt.Fprintf(&b, "[%v=%v,dist=%d]\n", e.key, e.value, e.dist)
	}
	return b.String()
}
