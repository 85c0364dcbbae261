package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/menuctl/pkg/report"
)

type Rating struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewRating(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rating",
		Short: "show average price and expense rating of the menu file",
	}
	TweakCommand(cmd)

	c := &Rating{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Rating) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	s, err := c.mainopts.LoadMenu(c.cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	PrintRating(c.cmd.OutOrStdout(), report.ExpenseRating(s))
	return nil
}

func PrintRating(w io.Writer, r report.Rating) {
	if !r.HasData() {
		fmt.Fprintf(w, "No items on the menu to rate.\n")
		return
	}
	fmt.Fprintf(w, "Average price: %.2f\n", r.Average)
	fmt.Fprintf(w, "Expense rating is : %s\n", r.Tier)
}
