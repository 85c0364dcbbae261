package dish_test

import (
	"errors"
	"math"

	. "github.com/mandelsoft/menuctl/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/menuctl/pkg/dish"
)

var _ = Describe("dish", func() {
	scale := me.DefaultSpiceScale()

	Context("validators", func() {
		It("name", func() {
			Expect(me.ValidName("a")).To(BeFalse())
			Expect(me.ValidName("bo")).To(BeFalse())
			Expect(me.ValidName("soup")).To(BeTrue())
			Expect(me.ValidName("abc")).To(BeTrue())
			Expect(me.ValidName("abcdefghijklmnopqrstuvwxy")).To(BeTrue())
			Expect(me.ValidName("abcdefghijklmnopqrstuvwxyz")).To(BeFalse())
			Expect(me.ValidName("crème")).To(BeTrue())
		})

		It("calories", func() {
			Expect(me.ValidCalories("100")).To(BeTrue())
			Expect(me.ValidCalories("50.0")).To(BeFalse())
			Expect(me.ValidCalories("abc")).To(BeFalse())
			Expect(me.ValidCalories("")).To(BeFalse())
			Expect(me.ValidCalories(" 100")).To(BeTrue())
		})

		It("price", func() {
			Expect(me.ValidPrice("5.9")).To(BeTrue())
			Expect(me.ValidPrice("10.15")).To(BeTrue())
			Expect(me.ValidPrice("7")).To(BeTrue())
			Expect(me.ValidPrice("five")).To(BeFalse())
			Expect(me.ValidPrice("NaN")).To(BeFalse())
			Expect(me.ValidPrice("inf")).To(BeFalse())
			Expect(me.ValidPrice("0x1p4")).To(BeFalse())
			Expect(me.ValidPrice("1e307")).To(BeTrue())
			Expect(me.ValidPrice("1e309")).To(BeFalse())
		})

		It("vegetarian", func() {
			Expect(me.ValidVegetarian("yes")).To(BeTrue())
			Expect(me.ValidVegetarian("no")).To(BeTrue())
			Expect(me.ValidVegetarian("YES")).To(BeTrue())
			Expect(me.ValidVegetarian("No")).To(BeTrue())
			Expect(me.ValidVegetarian("maybe")).To(BeFalse())
		})

		It("spicy level", func() {
			Expect(me.ValidSpicyLevel("1", scale)).To(BeTrue())
			Expect(me.ValidSpicyLevel("4", scale)).To(BeTrue())
			Expect(me.ValidSpicyLevel("5", scale)).To(BeFalse())
			Expect(me.ValidSpicyLevel("one", scale)).To(BeFalse())
			Expect(me.ValidSpicyLevel("1", me.SpiceScale{2: "mild"})).To(BeFalse())
		})
	})

	Context("build", func() {
		It("creates dish", func() {
			d := Must(me.Build([]string{"burrito", "500", "12.90", "yes", "2"}, scale))
			Expect(d).To(Equal(me.Dish{
				Name:       "burrito",
				Calories:   500,
				Price:      12.9,
				Vegetarian: "yes",
				SpicyLevel: 2,
			}))
		})

		It("rounds price", func() {
			d := Must(me.Build([]string{"burrito", "500", "12.906", "Yes", "2"}, scale))
			Expect(d.Price).To(BeNumerically("~", 12.91, 1e-9))
			Expect(d.Vegetarian).To(Equal("Yes"))
			Expect(d.IsVegetarian()).To(BeTrue())
		})

		It("keeps large price finite", func() {
			d := Must(me.Build([]string{"burrito", "500", "1e307", "yes", "2"}, scale))
			Expect(math.IsInf(d.Price, 0)).To(BeFalse())
			Expect(d.Price).To(Equal(1e307))
			Expect(Must(me.Build(d.Record(), scale))).To(Equal(d))

			d = Must(me.Build([]string{"burrito", "500", "-1.7e308", "yes", "2"}, scale))
			Expect(d.Price).To(Equal(-1.7e308))
		})

		It("reports first invalid field", func() {
			_, err := me.Build([]string{"a", "500", "12.90", "yes", "2"}, scale)
			Expect(err).To(Equal(&me.ValidationError{Field: "name", Value: "a"}))

			_, err = me.Build([]string{"burrito", "five", "price", "yes", "2"}, scale)
			Expect(err).To(Equal(&me.ValidationError{Field: "calories", Value: "five"}))

			_, err = me.Build([]string{"burrito", "500", "12.90", "yes", "9"}, scale)
			Expect(err).To(Equal(&me.ValidationError{Field: "spicy_level", Value: "9"}))
		})

		It("reports field count", func() {
			_, err := me.Build([]string{"burrito", "500"}, scale)
			var cerr *me.FieldCountError
			Expect(errors.As(err, &cerr)).To(BeTrue())
			Expect(cerr.Got).To(Equal(2))

			var verr *me.ValidationError
			Expect(errors.As(err, &verr)).To(BeFalse())
		})

		It("checks existing dishes", func() {
			MustBeSuccessful(me.Check(me.Dish{Name: "soup", Calories: 100, Price: 4.5, Vegetarian: "no", SpicyLevel: 1}, scale))
			Expect(me.Check(me.Dish{Name: "soup", Calories: 100, Price: 4.5, Vegetarian: "no", SpicyLevel: 7}, scale)).To(HaveOccurred())
		})
	})

	Context("set field", func() {
		var d me.Dish

		BeforeEach(func() {
			d = Must(me.Build([]string{"burrito", "500", "12.90", "yes", "2"}, scale))
		})

		It("sets converted value", func() {
			MustBeSuccessful(me.SetField(&d, me.FieldPrice, "9.999", scale))
			Expect(d.Price).To(Equal(10.0))
			MustBeSuccessful(me.SetField(&d, me.FieldSpicyLevel, "4", scale))
			Expect(d.SpicyLevel).To(Equal(4))
		})

		It("keeps dish on error", func() {
			orig := d
			Expect(me.SetField(&d, me.FieldCalories, "1.5", scale)).To(Equal(&me.ValidationError{Field: "calories", Value: "1.5"}))
			Expect(me.SetField(&d, "color", "red", scale)).To(Equal(&me.UnknownFieldError{Field: "color"}))
			Expect(d).To(Equal(orig))
		})
	})

	Context("record", func() {
		It("provides fields in order", func() {
			d := me.Dish{Name: "soup", Calories: 120, Price: 4.5, Vegetarian: "no", SpicyLevel: 1}
			Expect(d.Record()).To(Equal([]string{"soup", "120", "4.5", "no", "1"}))
		})
	})

	Context("spice scale", func() {
		It("describes levels", func() {
			Expect(scale.Describe()).To(Equal("1-4"))
			Expect(me.SpiceScale{1: "a", 3: "b"}.Describe()).To(Equal("1,3"))
			Expect(scale.Label(3)).To(Equal("Hot"))
		})
	})
})
