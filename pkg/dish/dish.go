package dish

import (
	"strconv"
	"strings"
)

const (
	FieldName       = "name"
	FieldCalories   = "calories"
	FieldPrice      = "price"
	FieldVegetarian = "is_vegetarian"
	FieldSpicyLevel = "spicy_level"
)

// Fields is the fixed field order used for raw records.
var Fields = []string{FieldName, FieldCalories, FieldPrice, FieldVegetarian, FieldSpicyLevel}

const (
	YES = "yes"
	NO  = "no"
)

// Dish is a single validated menu entry.
// Instances are created by Build and modified by SetField,
// so all fields are always valid for the spice scale
// used at validation time.
type Dish struct {
	Name       string  `json:"name"`
	Calories   int     `json:"calories"`
	Price      float64 `json:"price"`
	Vegetarian string  `json:"is_vegetarian"`
	SpicyLevel int     `json:"spicy_level"`
}

func (d *Dish) IsVegetarian() bool {
	return strings.ToLower(d.Vegetarian) == YES
}

// Get returns the textual representation of a field.
func (d *Dish) Get(field string) (string, bool) {
	switch field {
	case FieldName:
		return d.Name, true
	case FieldCalories:
		return strconv.Itoa(d.Calories), true
	case FieldPrice:
		return FormatPrice(d.Price), true
	case FieldVegetarian:
		return d.Vegetarian, true
	case FieldSpicyLevel:
		return strconv.Itoa(d.SpicyLevel), true
	}
	return "", false
}

// Record returns the raw field values in the order of Fields.
func (d *Dish) Record() []string {
	r := make([]string, len(Fields))
	for i, f := range Fields {
		r[i], _ = d.Get(f)
	}
	return r
}

// FormatPrice formats a price with the shortest
// representation preserving its value (12.9, 10.15, 7).
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func IsField(field string) bool {
	for _, f := range Fields {
		if f == field {
			return true
		}
	}
	return false
}
