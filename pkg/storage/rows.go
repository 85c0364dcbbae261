package storage

import (
	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	"github.com/mandelsoft/menuctl/pkg/utils"
)

// SaveToRows provides one row per dish in store order.
// Fields are ordered like dish.Fields.
func SaveToRows(s *menu.Store) [][]string {
	return utils.TransformSlice(s.Dishes(), func(d dish.Dish) []string { return d.Record() })
}

// LoadFromRows appends all valid rows to the store.
// It returns the number of appended dishes and
// the 1-based numbers of the rejected rows.
func LoadFromRows(s *menu.Store, rows [][]string, scale dish.SpiceScale) (int, []int) {
	l := newLoader(s, scale)
	for _, r := range rows {
		l.add(r, nil)
	}
	return l.appended, l.invalid
}

type loader struct {
	store    *menu.Store
	scale    dish.SpiceScale
	row      int
	appended int
	invalid  []int
}

func newLoader(s *menu.Store, scale dish.SpiceScale) *loader {
	return &loader{store: s, scale: scale}
}

// add handles the next row. A row which could not be
// read (err != nil) is counted as invalid.
func (l *loader) add(record []string, err error) {
	l.row++
	if err == nil {
		var d dish.Dish
		d, err = dish.Build(record, l.scale)
		if err == nil {
			l.store.Append(d)
			l.appended++
			return
		}
	}
	log.Info("skipping row {{row}}: {{error}}", "row", l.row, "error", err.Error())
	l.invalid = append(l.invalid, l.row)
}
