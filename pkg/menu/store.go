package menu

import (
	"fmt"
	"iter"
	"slices"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/utils"
)

type Filter int

const (
	All Filter = iota
	VegetarianOnly
)

// Store is the ordered in-memory dish list.
// Insertion order is display order. It is not
// safe for concurrent use.
type Store struct {
	dishes []dish.Dish
}

func New(dishes ...dish.Dish) *Store {
	return &Store{dishes: slices.Clone(dishes)}
}

func (s *Store) Len() int {
	return len(s.dishes)
}

func (s *Store) IsEmpty() bool {
	return len(s.dishes) == 0
}

// Dishes returns a copy of the current dish list.
func (s *Store) Dishes() []dish.Dish {
	return slices.Clone(s.dishes)
}

func (s *Store) Append(d dish.Dish) {
	s.dishes = append(s.dishes, d)
	log.Debug("appended dish {{name}}", "name", d.Name, "size", len(s.dishes))
}

func (s *Store) ClearAll() {
	log.Debug("clearing {{size}} dishes", "size", len(s.dishes))
	s.dishes = nil
}

// List provides the dishes matching the filter together with
// a display index. Numbering starts with start and counts
// yielded dishes only.
func (s *Store) List(filter Filter, start int) iter.Seq2[int, dish.Dish] {
	return func(yield func(int, dish.Dish) bool) {
		idx := start
		for _, d := range s.dishes {
			if filter == VegetarianOnly && !d.IsVegetarian() {
				continue
			}
			if !yield(idx, d) {
				return
			}
			idx++
		}
	}
}

// Fingerprint provides a content hash of the store, which
// changes whenever a dish is added, removed or modified.
func (s *Store) Fingerprint() string {
	records := utils.TransformSlice(s.dishes, func(d dish.Dish) []string { return d.Record() })
	h, err := utils.HashData(records)
	if err != nil {
		log.Error("cannot hash menu", "error", err)
		return fmt.Sprint(records)
	}
	return h
}
