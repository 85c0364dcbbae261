package dish

import (
	"fmt"

	"github.com/mandelsoft/menuctl/pkg/utils"
)

// SpiceScale maps spiciness levels to a human readable description.
type SpiceScale map[int]string

func DefaultSpiceScale() SpiceScale {
	return SpiceScale{
		1: "Not spicy",
		2: "Low key spicy",
		3: "Hot",
		4: "Diabolical",
	}
}

func (s SpiceScale) Has(level int) bool {
	_, ok := s[level]
	return ok
}

func (s SpiceScale) Label(level int) string {
	if l, ok := s[level]; ok {
		return l
	}
	return fmt.Sprintf("unknown level %d", level)
}

// Levels returns the configured levels in ascending order.
func (s SpiceScale) Levels() []int {
	return utils.OrderedMapKeys(s)
}

// Describe provides a short description of the valid range
// of levels, like 1-4, for prompts.
func (s SpiceScale) Describe() string {
	levels := s.Levels()
	switch len(levels) {
	case 0:
		return "none"
	case 1:
		return fmt.Sprintf("%d", levels[0])
	}
	if levels[len(levels)-1]-levels[0] == len(levels)-1 {
		return fmt.Sprintf("%d-%d", levels[0], levels[len(levels)-1])
	}
	return utils.JoinFunc(levels, ",", func(l int) string { return fmt.Sprintf("%d", l) })
}
