package menu

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mandelsoft/menuctl/pkg/dish"
)

var ErrEmptyStore = errors.New("menu is empty")

type InvalidIndexError struct {
	Index string
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("%q is an invalid dish number", e.Index)
}

// IndexValid checks whether raw is a non-negative integer
// literal addressing an existing dish when adjusted by start.
func (s *Store) IndexValid(raw string, start int) bool {
	_, ok := s.adjust(raw, start)
	return ok
}

// ResolveIndex maps a user facing index to the internal
// zero based one.
func (s *Store) ResolveIndex(raw string, start int) (int, error) {
	if s.IsEmpty() {
		return -1, ErrEmptyStore
	}
	i, ok := s.adjust(raw, start)
	if !ok {
		return -1, &InvalidIndexError{Index: raw}
	}
	return i, nil
}

func (s *Store) adjust(raw string, start int) (int, bool) {
	if !isDigits(raw) {
		return -1, false
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return -1, false
	}
	i -= start
	if i < 0 || i >= len(s.dishes) {
		return -1, false
	}
	return i, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// DeleteAt removes and returns the dish addressed by raw.
func (s *Store) DeleteAt(raw string, start int) (dish.Dish, error) {
	i, err := s.ResolveIndex(raw, start)
	if err != nil {
		return dish.Dish{}, err
	}
	d := s.dishes[i]
	s.dishes = append(s.dishes[:i], s.dishes[i+1:]...)
	log.Debug("deleted dish {{name}} at {{index}}", "name", d.Name, "index", i)
	return d, nil
}

// UpdateField replaces a single field of the addressed dish.
// The value is validated with the same rule used by dish.Build.
// Errors are ErrEmptyStore, *InvalidIndexError,
// *dish.UnknownFieldError and *dish.ValidationError. The store is
// not modified on error.
func (s *Store) UpdateField(raw string, start int, field, value string, scale dish.SpiceScale) (dish.Dish, error) {
	i, err := s.ResolveIndex(raw, start)
	if err != nil {
		return dish.Dish{}, err
	}
	d := s.dishes[i]
	err = dish.SetField(&d, field, value, scale)
	if err != nil {
		return dish.Dish{}, err
	}
	s.dishes[i] = d
	log.Debug("updated field {{field}} of dish {{name}}", "field", field, "name", d.Name)
	return d, nil
}
