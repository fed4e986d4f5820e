// Package clocktable keeps labelled daily time windows and tells which of them
// are open at a given minute.
package clocktable

import (
	"fmt"

	"github.com/henderiw/wrange/pkg/rangetable"
	"github.com/henderiw/wrange/pkg/wrange"
	"k8s.io/apimachinery/pkg/labels"
)

type ClockTable interface {
	Add(id int64, w Window, l labels.Set) error
	Remove(id int64) error
	Get(id int64) (Window, labels.Set, error)

	Count() int

	// Active returns the ids, in order, of the selected windows open at minute.
	Active(minute uint16, selector labels.Selector) []int64
	// Overlap returns, per selected window, the part that overlaps w.
	Overlap(w Window, selector labels.Selector) map[int64]wrange.Set[uint16]
}

// New returns a table holding up to size windows.
func New(size int64) (ClockTable, error) {
	t, err := rangetable.NewTable[uint16](size, nil, validateWindow)
	if err != nil {
		return nil, err
	}
	return &clockTable{table: t}, nil
}

// validateWindow rejects ranges that were not built as a Window.
func validateWindow(id int64, w wrange.Wrange[uint16]) error {
	b, ok := w.Bounds()
	if !ok {
		return fmt.Errorf("window %d must have a start and an end, got %s", id, w)
	}
	if !b.Low.IsInclusive() || !b.High.IsExclusive() {
		return fmt.Errorf("window %d must include its start and exclude its end, got %s", id, w)
	}
	if b.Low.Value() >= MinutesPerDay || b.High.Value() > MinutesPerDay {
		return fmt.Errorf("window %d does not fit in a day: %s", id, w)
	}
	return nil
}

type clockTable struct {
	table rangetable.Table[uint16]
}

func (r *clockTable) Add(id int64, w Window, l labels.Set) error {
	if !r.table.IsFree(id) {
		return fmt.Errorf("window %d already exists", id)
	}
	return r.table.Claim(id, w.Range(), l)
}

func (r *clockTable) Remove(id int64) error {
	return r.table.Release(id)
}

func (r *clockTable) Get(id int64) (Window, labels.Set, error) {
	e, err := r.table.Get(id)
	if err != nil {
		return Window{}, nil, err
	}
	return Window{rng: e.Range()}, e.Labels(), nil
}

func (r *clockTable) Count() int {
	return r.table.Count()
}

func (r *clockTable) Active(minute uint16, selector labels.Selector) []int64 {
	var ids []int64
	if minute >= MinutesPerDay {
		return ids
	}

	iter := r.table.Iterate()
	for iter.Next() {
		if selector != nil && !selector.Matches(iter.Value().Labels()) {
			continue
		}
		if iter.Value().Range().Contains(minute) {
			ids = append(ids, iter.ID())
		}
	}
	return ids
}

func (r *clockTable) Overlap(w Window, selector labels.Selector) map[int64]wrange.Set[uint16] {
	return r.table.Overlapping(w.Range(), selector)
}
