package app

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/goombaio/namegenerator"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
)

type Fake struct {
	cmd *cobra.Command

	mainopts *Options
	count    int
	seed     int64
}

func NewFake(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake <options> [<file>]",
		Short: "write a menu file with random dishes",
	}
	TweakCommand(cmd)

	c := &Fake{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.IntVarP(&c.count, "count", "n", 10, "number of dishes")
	flags.Int64VarP(&c.seed, "seed", "s", 0, "random seed (default: current time)")
	return cmd
}

func (c *Fake) Run(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("at most one file expected")
	}
	if c.count < 0 {
		return fmt.Errorf("dish count must not be negative")
	}
	file := c.mainopts.file
	if len(args) == 1 {
		file = args[0]
	}
	if err := c.mainopts.Files().CheckDestination(file); err != nil {
		return err
	}

	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := RandomMenu(c.count, c.mainopts.SpiceScale(), seed)
	if err != nil {
		return err
	}
	err = c.mainopts.Files().Save(s, file)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%d dishes written to %q\n", s.Len(), file)
	return nil
}

// RandomMenu creates a menu with count valid dishes.
func RandomMenu(count int, scale dish.SpiceScale, seed int64) (*menu.Store, error) {
	generator := namegenerator.NewNameGenerator(seed)
	random := rand.New(rand.NewSource(seed))
	levels := scale.Levels()

	s := menu.New()
	for i := 0; i < count; i++ {
		vegetarian := dish.NO
		if random.Intn(3) == 0 {
			vegetarian = dish.YES
		}
		record := []string{
			randomName(generator),
			strconv.Itoa(100 + 10*random.Intn(110)),
			fmt.Sprintf("%d.%02d", 3+random.Intn(30), random.Intn(100)),
			vegetarian,
			strconv.Itoa(levels[random.Intn(len(levels))]),
		}
		d, err := dish.Build(record, scale)
		if err != nil {
			return nil, err
		}
		s.Append(d)
	}
	return s, nil
}

func randomName(generator namegenerator.Generator) string {
	name := []rune(generator.Generate())
	if len(name) > dish.MaxNameLength {
		name = name[:dish.MaxNameLength]
	}
	for len(name) < dish.MinNameLength {
		name = append(name, '-')
	}
	return string(name)
}
