package rangetable

import (
	"github.com/henderiw/wrange/pkg/wrange"
	"golang.org/x/exp/constraints"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry[T constraints.Ordered] interface {
	ID() int64
	Range() wrange.Wrange[T]
	Labels() labels.Set
}

type entry[T constraints.Ordered] struct {
	id     int64
	rng    wrange.Wrange[T]
	labels labels.Set
}

func (r entry[T]) ID() int64 { return r.id }
func (r entry[T]) Range() wrange.Wrange[T] { return r.rng }
func (r entry[T]) Labels() labels.Set { return r.labels }

func NewEntry[T constraints.Ordered](id int64, w wrange.Wrange[T], l labels.Set) Entry[T] {
	if l == nil {
		l = labels.Set{}
	}
	return entry[T]{
		id:     id,
		rng:    w,
		labels: l,
	}
}
