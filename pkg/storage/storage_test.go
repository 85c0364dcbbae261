package storage_test

import (
	"errors"
	"os"

	"github.com/go-test/deep"
	. "github.com/mandelsoft/menuctl/pkg/testutils"
	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	me "github.com/mandelsoft/menuctl/pkg/storage"
)

var scale = dish.DefaultSpiceScale()

func Menu(records ...[]string) *menu.Store {
	s := menu.New()
	for _, r := range records {
		s.Append(Must(dish.Build(r, scale)))
	}
	return s
}

var _ = Describe("storage", func() {
	var store *menu.Store

	BeforeEach(func() {
		store = Menu(
			[]string{"burrito", "500", "12.90", "yes", "2"},
			[]string{"rice bowl", "400", "14.90", "no", "3"},
			[]string{"margherita, large", "800", "18", "No", "2"},
		)
	})

	Context("rows", func() {
		It("saves in store order", func() {
			Expect(me.SaveToRows(store)).To(Equal([][]string{
				{"burrito", "500", "12.9", "yes", "2"},
				{"rice bowl", "400", "14.9", "no", "3"},
				{"margherita, large", "800", "18", "No", "2"},
			}))
		})

		It("round trips", func() {
			target := menu.New()
			n, invalid := me.LoadFromRows(target, me.SaveToRows(store), scale)
			Expect(n).To(Equal(3))
			Expect(invalid).To(BeEmpty())
			Expect(deep.Equal(target.Dishes(), store.Dishes())).To(BeNil())
		})

		It("round trips large prices", func() {
			source := Menu([]string{"caviar", "300", "1e307", "no", "1"})
			target := menu.New()
			n, invalid := me.LoadFromRows(target, me.SaveToRows(source), scale)
			Expect(n).To(Equal(1))
			Expect(invalid).To(BeEmpty())
			Expect(target.Dishes()).To(Equal(source.Dishes()))
		})

		It("skips invalid rows", func() {
			target := menu.New()
			n, invalid := me.LoadFromRows(target, [][]string{
				{"burrito", "500", "12.90", "yes", "2"},
				{"bo", "500", "12.90", "yes", "2"},
				{"soup", "120"},
				{"soup", "120", "4.50", "no", "1"},
				{"curry", "700", "11", "no", "7"},
			}, scale)
			Expect(n).To(Equal(2))
			Expect(invalid).To(Equal([]int{2, 3, 5}))
			Expect(target.Len()).To(Equal(2))
			Expect(target.Dishes()[1].Name).To(Equal("soup"))
		})
	})

	Context("files", func() {
		var fs vfs.FileSystem
		var files *me.Files

		BeforeEach(func() {
			fs = Must(TestFileSystem(map[string]string{
				"/menus/good.csv": "burrito,500,12.90,yes,2\nsoup,120,4.5,no,1\n",
				"/menus/mixed.csv": "burrito,500,12.90,yes,2\n" +
					"a,1,1,yes,1\n" +
					"\"bad\"quote,1,1,yes,1\n" +
					"too,many,fields,in,this,row\n" +
					"curry,700,11.00,NO,4\n",
				"/menus/menu.txt": "burrito,500,12.90,yes,2\n",
			}))
			files = me.New("", fs)
		})

		AfterEach(func() {
			vfs.Cleanup(fs)
		})

		It("uses default extension", func() {
			Expect(files.Extension()).To(Equal(".csv"))
		})

		It("loads file", func() {
			target := menu.New()
			r := Must(files.Load(target, "/menus/good.csv", scale))
			Expect(r).To(Equal(&me.LoadResult{Appended: 2}))
			Expect(target.Dishes()).To(Equal([]dish.Dish{
				{Name: "burrito", Calories: 500, Price: 12.9, Vegetarian: "yes", SpicyLevel: 2},
				{Name: "soup", Calories: 120, Price: 4.5, Vegetarian: "no", SpicyLevel: 1},
			}))
		})

		It("appends to existing dishes", func() {
			r := Must(files.Load(store, "/menus/good.csv", scale))
			Expect(r.Appended).To(Equal(2))
			Expect(store.Len()).To(Equal(5))
		})

		It("reports invalid rows", func() {
			target := menu.New()
			r := Must(files.Load(target, "/menus/mixed.csv", scale))
			Expect(r.Appended).To(Equal(2))
			Expect(r.Invalid).To(Equal([]int{2, 3, 4}))
		})

		It("rejects source names", func() {
			_, err := files.Load(menu.New(), "/menus/menu.txt", scale)
			Expect(err).To(Equal(&me.InvalidSourceNameError{Name: "/menus/menu.txt", Extension: ".csv"}))
			_, err = files.Load(menu.New(), "filename.docx", scale)
			Expect(err).To(BeAssignableToTypeOf(&me.InvalidSourceNameError{}))
		})

		It("reports missing source", func() {
			_, err := files.Load(menu.New(), "/menus/does_not_exist.csv", scale)
			Expect(err).To(Equal(&me.SourceNotFoundError{Name: "/menus/does_not_exist.csv"}))
		})

		It("rejects destination names", func() {
			err := files.Save(store, "/menus/menu.docx")
			Expect(err).To(Equal(&me.InvalidDestinationNameError{Name: "/menus/menu.docx", Extension: ".csv"}))
			_, err = fs.Stat("/menus/menu.docx")
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		It("saves and restores", func() {
			MustBeSuccessful(files.Save(store, "/menus/saved.csv"))
			Expect(Must(FileContent(fs, "/menus/saved.csv"))).To(Equal(
				"burrito,500,12.9,yes,2\n" +
					"rice bowl,400,14.9,no,3\n" +
					"\"margherita, large\",800,18,No,2\n"))

			target := menu.New()
			r := Must(files.Load(target, "/menus/saved.csv", scale))
			Expect(r.Invalid).To(BeEmpty())
			Expect(deep.Equal(target.Dishes(), store.Dishes())).To(BeNil())
		})

		It("replaces existing file", func() {
			MustBeSuccessful(files.Save(Menu([]string{"soup", "120", "4.5", "no", "1"}), "/menus/good.csv"))
			Expect(Must(FileContent(fs, "/menus/good.csv"))).To(Equal("soup,120,4.5,no,1\n"))
			list := Must(vfs.ReadDir(fs, "/menus"))
			Expect(len(list)).To(Equal(3))
		})

		It("saves empty menu", func() {
			MustBeSuccessful(files.Save(menu.New(), "/menus/empty.csv"))
			Expect(Must(FileContent(fs, "/menus/empty.csv"))).To(Equal(""))
		})

		It("uses configured extension", func() {
			files = me.New(".menu", fs)
			MustBeSuccessful(files.Save(store, "/menus/x.menu"))
			Expect(files.Save(store, "/menus/x.csv")).To(BeAssignableToTypeOf(&me.InvalidDestinationNameError{}))
		})
	})
})
