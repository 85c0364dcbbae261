package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	"github.com/mandelsoft/menuctl/pkg/utils"
)

const SEPARATOR = "------------------------------------------"

type ListOptions struct {
	NameOnly  bool
	ShowIndex bool
	Start     int
	Filter    menu.Filter
}

func PrintMenu(w io.Writer, s *menu.Store, scale dish.SpiceScale, opts ListOptions) {
	fmt.Fprintln(w, SEPARATOR)
	for i, d := range s.List(opts.Filter, opts.Start) {
		if opts.ShowIndex {
			fmt.Fprintf(w, "%d. ", i)
		}
		fmt.Fprintln(w, strings.ToUpper(d.Name))
		if !opts.NameOnly {
			fmt.Fprintf(w, "* Calories: %d\n", d.Calories)
			fmt.Fprintf(w, "* Price: %.1f\n", d.Price)
			fmt.Fprintf(w, "* Is it vegetarian: %s\n", d.Vegetarian)
			fmt.Fprintf(w, "* Spicy level: %s\n", scale.Label(d.SpicyLevel))
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, SEPARATOR)
}

func PrintDish(w io.Writer, d dish.Dish, scale dish.SpiceScale) {
	fmt.Fprintln(w, strings.ToUpper(d.Name))
	fmt.Fprintf(w, "* Calories: %d\n", d.Calories)
	fmt.Fprintf(w, "* Price: %s\n", dish.FormatPrice(d.Price))
	fmt.Fprintf(w, "* Is it vegetarian: %s\n", d.Vegetarian)
	fmt.Fprintf(w, "* Spicy level: %s\n", scale.Label(d.SpicyLevel))
	fmt.Fprintln(w)
}

// Rows formats a list of row numbers.
func Rows(rows []int) string {
	return utils.JoinFunc(rows, ", ", strconv.Itoa)
}

// SplitRecord splits a comma separated dish description
// into trimmed raw fields.
func SplitRecord(s string) []string {
	return utils.TransformSlice(strings.Split(s, ","), strings.TrimSpace)
}
