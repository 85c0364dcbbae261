package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
)

type DishList struct {
	Items []dish.Dish `json:"items"`
}

type List struct {
	cmd *cobra.Command

	mainopts   *Options
	vegetarian bool
	names      bool
	output     string
}

func NewList(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <options>",
		Short: "list dishes of menu file",
	}
	TweakCommand(cmd)

	c := &List{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.vegetarian, "vegetarian", "V", false, "vegetarian dishes only")
	flags.BoolVarP(&c.names, "names", "N", false, "show names only")
	flags.StringVarP(&c.output, "output", "o", "", "output format (yaml or json)")
	return cmd
}

func (c *List) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}

	s, err := c.mainopts.LoadMenu(c.cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}

	filter := menu.All
	if c.vegetarian {
		filter = menu.VegetarianOnly
	}

	list := &DishList{Items: []dish.Dish{}}
	for _, d := range s.List(filter, 0) {
		list.Items = append(list.Items, d)
	}

	switch strings.ToLower(strings.TrimSpace(c.output)) {
	case "":
		if len(list.Items) == 0 {
			fmt.Fprintf(c.cmd.OutOrStdout(), "WARNING: There is nothing to display!\n")
			return nil
		}
		PrintMenu(c.cmd.OutOrStdout(), s, c.mainopts.SpiceScale(), ListOptions{
			NameOnly:  c.names,
			ShowIndex: true,
			Start:     c.mainopts.StartIndex(),
			Filter:    filter,
		})
	case "json":
		data, err := json.Marshal(list)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", string(data))
	case "yaml":
		data, err := yaml.Marshal(list)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s", string(data))
	default:
		return fmt.Errorf("unknown output format %q", c.output)
	}
	return nil
}
