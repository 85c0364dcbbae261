package dish

import (
	"fmt"
)

// ValidationError describes the first field of a dish
// failing its validation rule.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}

// FieldCountError is returned by Build if the record
// does not have the expected number of fields.
type FieldCountError struct {
	Got int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("invalid number of fields: got %d, expected %d", e.Got, len(Fields))
}

type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown dish field %q", e.Field)
}

type rule struct {
	valid func(value string, scale SpiceScale) bool
	apply func(d *Dish, value string)
}

var rules = map[string]rule{
	FieldName: {
		valid: func(v string, _ SpiceScale) bool { return ValidName(v) },
		apply: func(d *Dish, v string) { d.Name = v },
	},
	FieldCalories: {
		valid: func(v string, _ SpiceScale) bool { return ValidCalories(v) },
		apply: func(d *Dish, v string) { d.Calories, _ = parseInt(v) },
	},
	FieldPrice: {
		valid: func(v string, _ SpiceScale) bool { return ValidPrice(v) },
		apply: func(d *Dish, v string) {
			p, _ := parseFloat(v)
			d.Price = RoundPrice(p)
		},
	},
	FieldVegetarian: {
		valid: func(v string, _ SpiceScale) bool { return ValidVegetarian(v) },
		apply: func(d *Dish, v string) { d.Vegetarian = v },
	},
	FieldSpicyLevel: {
		valid: ValidSpicyLevel,
		apply: func(d *Dish, v string) { d.SpicyLevel, _ = parseInt(v) },
	},
}

// Build creates a dish from a raw record ordered like Fields.
// Fields are checked in this order and the first invalid one
// is reported as *ValidationError. A record with a wrong
// number of fields is reported as *FieldCountError.
func Build(record []string, scale SpiceScale) (Dish, error) {
	var d Dish

	if len(record) != len(Fields) {
		return Dish{}, &FieldCountError{Got: len(record)}
	}
	for i, f := range Fields {
		if err := SetField(&d, f, record[i], scale); err != nil {
			return Dish{}, err
		}
	}
	return d, nil
}

// SetField validates the given raw value with the rule for the
// field and, if valid, stores the converted value.
// The dish is left untouched on any error.
func SetField(d *Dish, field, value string, scale SpiceScale) error {
	r, ok := rules[field]
	if !ok {
		return &UnknownFieldError{Field: field}
	}
	if !r.valid(value, scale) {
		return &ValidationError{Field: field, Value: value}
	}
	r.apply(d, value)
	return nil
}

// Check validates an already existing dish value, for example
// one decoded from a configuration file, against the rules and the
// given spice scale.
func Check(d Dish, scale SpiceScale) error {
	_, err := Build(d.Record(), scale)
	return err
}
