// Package rangetable keeps labelled wrapping ranges under numeric ids and
// answers coverage and overlap queries over them.
package rangetable

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/henderiw/wrange/pkg/wrange"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	"k8s.io/apimachinery/pkg/labels"
)

type Table[T constraints.Ordered] interface {
	Get(id int64) (Entry[T], error)
	Claim(id int64, w wrange.Wrange[T], l labels.Set) error
	ClaimDynamic(w wrange.Wrange[T], l labels.Set) (int64, error)
	Release(id int64) error
	ReleaseByLabel(selector labels.Selector) int
	Update(id int64, w wrange.Wrange[T], l labels.Set) error

	Iterate() *Iterator[T]

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)

	GetAll() map[int64]Entry[T]
	GetByLabel(selector labels.Selector) map[int64]Entry[T]

	// Coverage returns the ranges of the selected entries as one set.
	Coverage(selector labels.Selector) wrange.Set[T]
	// Overlapping returns, per selected entry, the normalized non-empty part
	// of its range that lies inside query.
	Overlapping(query wrange.Wrange[T], selector labels.Selector) map[int64]wrange.Set[T]
}

// ValidationFn vets a claim or update. It is not applied to init entries.
type ValidationFn[T constraints.Ordered] func(id int64, w wrange.Wrange[T]) error

func NewTable[T constraints.Ordered](s int64, initEntries []Entry[T], v ValidationFn[T]) (Table[T], error) {
	r := &table[T]{
		m:          new(sync.RWMutex),
		table:      map[int64]Entry[T]{},
		size:       s,
		validateFn: v,
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.ID(), e.Range(), e.Labels(), true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[T constraints.Ordered] struct {
	m          *sync.RWMutex
	table      map[int64]Entry[T]
	size       int64
	validateFn ValidationFn[T]
}

func (r *table[T]) validateID(id int64) error {
	if id < 0 || id > r.size-1 {
		return fmt.Errorf("id %d is outside the allowed entries: 0 to %d", id, r.size-1)
	}
	return nil
}

func (r *table[T]) validate(id int64, w wrange.Wrange[T], init bool) error {
	if err := r.validateID(id); err != nil {
		return err
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id, w); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T]) Get(id int64) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	if err := r.validateID(id); err != nil {
		return nil, err
	}
	e, ok := r.table[id]
	if !ok {
		return nil, fmt.Errorf("no match found for: %d", id)
	}
	return e, nil
}

func (r *table[T]) Claim(id int64, w wrange.Wrange[T], l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, w, l, false)
}

func (r *table[T]) ClaimDynamic(w wrange.Wrange[T], l labels.Set) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	id, ok := r.findFree()
	if !ok {
		return 0, fmt.Errorf("no free entry found")
	}
	if err := r.add(id, w, l, false); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *table[T]) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validateID(id); err != nil {
		return err
	}
	r.delete(id)
	return nil
}

// ReleaseByLabel releases every entry matched by selector and returns how
// many were released.
func (r *table[T]) ReleaseByLabel(selector labels.Selector) int {
	r.m.Lock()
	defer r.m.Unlock()

	ids := lo.Keys(r.selectEntries(selector))
	for _, id := range ids {
		r.delete(id)
	}
	return len(ids)
}

func (r *table[T]) Update(id int64, w wrange.Wrange[T], l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, w, false); err != nil {
		return err
	}
	if r.isFree(id) {
		return fmt.Errorf("entry %d not found", id)
	}
	r.table[id] = NewEntry(id, w, l)
	logrus.WithFields(logrus.Fields{"id": id, "range": w.String()}).Debug("range updated")
	return nil
}

func (r *table[T]) Iterate() *Iterator[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table[T]) iterate() *Iterator[T] {
	keys := lo.Keys(r.table)
	slices.Sort(keys)

	return &Iterator[T]{current: -1, keys: keys, table: maps.Clone(r.table)}
}

func (r *table[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table[T]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return ok
}

func (r *table[T]) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.validateID(id) == nil && r.isFree(id)
}

func (r *table[T]) isFree(id int64) bool {
	_, ok := r.table[id]
	return !ok
}

func (r *table[T]) FindFree() (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	id, ok := r.findFree()
	if !ok {
		return 0, fmt.Errorf("no free entry found")
	}
	return id, nil
}

func (r *table[T]) findFree() (int64, bool) {
	for id := int64(0); id < r.size; id++ {
		if r.isFree(id) {
			return id, true
		}
	}
	return 0, false
}

func (r *table[T]) GetAll() map[int64]Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return maps.Clone(r.table)
}

func (r *table[T]) GetByLabel(selector labels.Selector) map[int64]Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.selectEntries(selector)
}

func (r *table[T]) Coverage(selector labels.Selector) wrange.Set[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	var out []wrange.Wrange[T]
	iter := r.iterate()
	for iter.Next() {
		if matches(selector, iter.Value()) {
			out = append(out, iter.Value().Range())
		}
	}
	return wrange.SetOf(out...)
}

func (r *table[T]) Overlapping(query wrange.Wrange[T], selector labels.Selector) map[int64]wrange.Set[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := map[int64]wrange.Set[T]{}
	for id, e := range r.selectEntries(selector) {
		overlap := lo.Reject(e.Range().Intersection(query).Normalized().Members(), func(w wrange.Wrange[T], _ int) bool {
			return w.IsEmpty()
		})
		if len(overlap) > 0 {
			entries[id] = wrange.SetOf(overlap...)
		}
	}
	return entries
}

func (r *table[T]) selectEntries(selector labels.Selector) map[int64]Entry[T] {
	return lo.PickBy(r.table, func(_ int64, e Entry[T]) bool {
		return matches(selector, e)
	})
}

// matches treats a nil selector as selecting everything.
func matches[T constraints.Ordered](selector labels.Selector, e Entry[T]) bool {
	if selector == nil {
		return true
	}
	return selector.Matches(e.Labels())
}

func (r *table[T]) add(id int64, w wrange.Wrange[T], l labels.Set, init bool) error {
	if err := r.validate(id, w, init); err != nil {
		return err
	}
	if !r.isFree(id) {
		return fmt.Errorf("entry %d already exists", id)
	}
	r.table[id] = NewEntry(id, w, l)
	logrus.WithFields(logrus.Fields{"id": id, "range": w.String(), "init": init}).Debug("range claimed")
	return nil
}

func (r *table[T]) delete(id int64) {
	if _, ok := r.table[id]; ok {
		logrus.WithFields(logrus.Fields{"id": id}).Debug("range released")
	}
	delete(r.table, id)
}
