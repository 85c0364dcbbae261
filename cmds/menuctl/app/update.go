package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Update struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewUpdate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <dish number> <field> <value>",
		Short: "update a field of a dish in the menu file",
	}
	TweakCommand(cmd)

	c := &Update{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Update) Run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("dish number, field and value required")
	}

	s, err := c.mainopts.LoadMenuForUpdate(c.cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	d, err := s.UpdateField(args[0], c.mainopts.StartIndex(), args[1], args[2], c.mainopts.SpiceScale())
	if err != nil {
		return err
	}
	err = c.mainopts.SaveMenu(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "Successfully updated the field |%s|:\n", args[1])
	PrintDish(c.cmd.OutOrStdout(), d, c.mainopts.SpiceScale())
	return nil
}
