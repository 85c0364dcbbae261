package app

import (
	"errors"
	"strings"
)

// GO_BACK is the selection key returning to the main menu.
const GO_BACK = "M"

var ErrGoBackCollision = errors.New("invalid sub menu, which contains M as a key")

type Option struct {
	Key         string
	Description string
}

func findOption(options []Option, key string) (Option, bool) {
	for _, o := range options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Select asks for one of the given options until a valid key is
// entered. With goBack the user may answer GO_BACK instead, which
// must not collide with any option key.
func (s *Shell) Select(action string, options []Option, toUpper, goBack bool) (string, error) {
	if goBack {
		for _, o := range options {
			if strings.EqualFold(o.Key, GO_BACK) {
				return "", ErrGoBackCollision
			}
		}
	}
	for {
		s.Printf("::: What would you like to %s?\n", strings.ToLower(action))
		for _, o := range options {
			s.Printf("%s - %s\n", o.Key, o.Description)
		}
		if goBack {
			s.Printf("::: Enter your selection or press '%s' to return to the main menu\n", strings.ToLower(GO_BACK))
		} else {
			s.Printf("::: Enter your selection\n")
		}
		selection, err := s.Read()
		if err != nil {
			return "", err
		}
		if toUpper {
			selection = strings.ToUpper(selection)
		}
		if goBack && strings.ToUpper(selection) == GO_BACK {
			return GO_BACK, nil
		}
		if o, ok := findOption(options, selection); ok {
			s.Printf("You selected |%s| to %s |%s|.\n", o.Key, strings.ToLower(action), o.Description)
			return o.Key, nil
		}
	}
}
