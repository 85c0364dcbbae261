package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/menuctl/pkg/dish"
)

type Add struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewAdd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>,<calories>,<price>,<vegetarian>,<spicy level> | <name> <calories> <price> <vegetarian> <spicy level>",
		Short: "add a dish to the menu file",
	}
	TweakCommand(cmd)

	c := &Add{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Add) Run(args []string) error {
	var record []string

	switch len(args) {
	case 0:
		return fmt.Errorf("dish fields required")
	case 1:
		record = SplitRecord(args[0])
	default:
		record = args
	}

	d, err := dish.Build(record, c.mainopts.SpiceScale())
	if err != nil {
		return err
	}

	s, err := c.mainopts.LoadMenuForUpdate(c.cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	s.Append(d)
	err = c.mainopts.SaveMenu(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "Successfully added a new dish!\n")
	PrintDish(c.cmd.OutOrStdout(), d, c.mainopts.SpiceScale())
	return nil
}
