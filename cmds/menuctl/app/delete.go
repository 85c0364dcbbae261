package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Delete struct {
	cmd *cobra.Command

	mainopts *Options
	all      bool
}

func NewDelete(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete {<dish number>} <options>",
		Short: "delete dishes from the menu file",
	}
	TweakCommand(cmd)

	c := &Delete{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.all, "all", "A", false, "delete the entire menu")
	return cmd
}

func (c *Delete) Run(args []string) error {
	if c.all {
		if len(args) != 0 {
			return fmt.Errorf("no dish number expected for option --all")
		}
	} else {
		if len(args) != 1 {
			return fmt.Errorf("dish number required")
		}
	}

	s, err := c.mainopts.LoadMenuForUpdate(c.cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}

	if c.all {
		n := s.Len()
		s.ClearAll()
		err = c.mainopts.SaveMenu(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "Deleted the entire menu (%d dishes).\n", n)
		return nil
	}

	d, err := s.DeleteAt(args[0], c.mainopts.StartIndex())
	if err != nil {
		return err
	}
	err = c.mainopts.SaveMenu(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "Deleted the dish |%s|\n", d.Name)
	return nil
}
