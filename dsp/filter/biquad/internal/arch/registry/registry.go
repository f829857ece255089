// Package registry collects the biquad block kernels compiled into this
// build and picks one for the running CPU.
package registry

import (
	"slices"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Kernel filters buf in place through one DF2T section with numerator b,
// denominator a (a0 = 1 implied) and delay state, returning the new state.
type Kernel func(b [3]float64, a [2]float64, state [2]float64, buf []float64) [2]float64

// Entry is one kernel and the CPU level it needs.
type Entry struct {
	Name     string
	Level    cpu.SIMDLevel
	Priority int
	Kernel   Kernel
}

// Table is an ordered kernel set, best first. Tables are filled from
// package init functions and are read-only afterwards.
type Table struct {
	entries []Entry
}

// Kernels is the table the biquad package dispatches from.
var Kernels Table

// Add inserts e, keeping entries sorted by descending priority.
func (t *Table) Add(e Entry) {
	i, _ := slices.BinarySearchFunc(t.entries, e.Priority, func(x Entry, p int) int {
		return p - x.Priority
	})
	for i < len(t.entries) && t.entries[i].Priority == e.Priority {
		i++
	}
	t.entries = slices.Insert(t.entries, i, e)
}

// Best returns the highest-priority entry that features can run.
func (t *Table) Best(features cpu.Features) (Entry, bool) {
	for _, e := range t.entries {
		if cpu.Supports(features, e.Level) {
			return e, true
		}
	}
	return Entry{}, false
}

// Names lists the registered kernels, best first.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}
