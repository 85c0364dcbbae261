package report_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	me "github.com/mandelsoft/menuctl/pkg/report"
)

func Prices(prices ...float64) *menu.Store {
	s := menu.New()
	for _, p := range prices {
		s.Append(dish.Dish{Name: "dish", Calories: 100, Price: p, Vegetarian: "no", SpicyLevel: 1})
	}
	return s
}

var _ = Describe("expense rating", func() {
	It("cheap", func() {
		r := me.ExpenseRating(Prices(8.99, 9.99, 6.99))
		Expect(r.Average).To(BeNumerically("~", 8.6567, 1e-4))
		Expect(r.Tier).To(Equal(me.Cheap))
		Expect(r.Dishes).To(Equal(3))
		Expect(r.HasData()).To(BeTrue())
	})

	It("moderate", func() {
		r := me.ExpenseRating(Prices(12.99, 14.90, 18.90))
		Expect(r.Tier).To(Equal(me.Moderate))
	})

	It("expensive", func() {
		r := me.ExpenseRating(Prices(15.99, 25.99, 18.99))
		Expect(r.Average).To(BeNumerically("~", 20.3233, 1e-4))
		Expect(r.Tier).To(Equal(me.Expensive))
	})

	It("boundaries", func() {
		Expect(me.TierFor(9.999)).To(Equal(me.Cheap))
		Expect(me.TierFor(10)).To(Equal(me.Moderate))
		Expect(me.TierFor(19.99)).To(Equal(me.Moderate))
		Expect(me.TierFor(20)).To(Equal(me.Expensive))
	})

	It("empty menu", func() {
		r := me.ExpenseRating(menu.New())
		Expect(r).To(Equal(me.Rating{}))
		Expect(r.HasData()).To(BeFalse())
		Expect(r.Tier).To(Equal(me.NoTier))
	})
})
