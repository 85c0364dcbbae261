package report

import (
	"github.com/mandelsoft/menuctl/pkg/dish"
)

type Tier string

const (
	NoTier    Tier = ""
	Cheap     Tier = "$"
	Moderate  Tier = "$$"
	Expensive Tier = "$$$"
)

const (
	ModerateThreshold  = 10.0
	ExpensiveThreshold = 20.0
)

// Source provides the dishes to rate.
type Source interface {
	Dishes() []dish.Dish
}

type Rating struct {
	Average float64 `json:"average"`
	Tier    Tier    `json:"tier,omitempty"`
	Dishes  int     `json:"dishes"`
}

// HasData reports whether the rating is based on
// at least one dish.
func (r Rating) HasData() bool {
	return r.Dishes > 0
}

// ExpenseRating determines the mean price of all dishes and
// its tier. An empty menu results in a rating without tier.
func ExpenseRating(s Source) Rating {
	list := s.Dishes()
	if len(list) == 0 {
		return Rating{}
	}
	total := 0.0
	for _, d := range list {
		total += d.Price
	}
	avg := total / float64(len(list))
	return Rating{
		Average: avg,
		Tier:    TierFor(avg),
		Dishes:  len(list),
	}
}

func TierFor(avg float64) Tier {
	switch {
	case avg < ModerateThreshold:
		return Cheap
	case avg < ExpensiveThreshold:
		return Moderate
	default:
		return Expensive
	}
}
