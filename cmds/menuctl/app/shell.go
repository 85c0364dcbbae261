package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	"github.com/mandelsoft/menuctl/pkg/report"
	"github.com/mandelsoft/menuctl/pkg/storage"
)

var MainMenu = []Option{
	{"L", "List"},
	{"A", "Add"},
	{"U", "Update"},
	{"D", "Delete"},
	{"C", "Clear the entire menu"},
	{"M", "Show average price"},
	{"S", "Save the data to file"},
	{"R", "Restore data from file"},
	{"Q", "Quit this program"},
}

var ListMenu = []Option{
	{"A", "complete menu"},
	{"V", "vegetarian dishes only"},
}

const CONFIRMATION = "Yes"

var errInputClosed = errors.New("input closed")

type ShellCommand struct {
	cmd *cobra.Command

	mainopts *Options
	empty    bool
}

func NewShell(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell <options>",
		Short: "interactive menu maintenance",
	}
	TweakCommand(cmd)

	c := &ShellCommand{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.empty, "empty", "e", false, "start with an empty menu")
	return cmd
}

func (c *ShellCommand) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	store := menu.New()
	if !c.empty {
		s, err := c.mainopts.config.Seed()
		if err != nil {
			return err
		}
		store = s
	}
	return NewShellFor(c.mainopts, store, c.cmd.InOrStdin(), c.cmd.OutOrStdout()).Run()
}

// Shell is the interactive console for a menu store.
type Shell struct {
	in    *bufio.Reader
	out   io.Writer
	opts  *Options
	store *menu.Store
	saved string
}

func NewShellFor(opts *Options, store *menu.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:    bufio.NewReader(in),
		out:   out,
		opts:  opts,
		store: store,
		saved: store.Fingerprint(),
	}
}

func (s *Shell) Store() *menu.Store {
	return s.store
}

func (s *Shell) Printf(msg string, args ...any) {
	fmt.Fprintf(s.out, msg, args...)
}

// Read reads the next input line.
func (s *Shell) Read() (string, error) {
	s.Printf("> ")
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			s.Printf("\n")
			return "", errInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Continue asks whether an action should be repeated.
func (s *Shell) Continue(question string, answer string) (bool, error) {
	s.Printf("::: %s Enter 'y' to %s.\n", question, answer)
	a, err := s.Read()
	if err != nil {
		return false, err
	}
	return strings.ToLower(a) == "y", nil
}

func (s *Shell) Run() error {
	warned := false
	log.Debug("starting shell with {{count}} dishes", "count", s.store.Len())
	for {
		s.PrintMainMenu()
		s.Printf("::: Enter an option\n")
		opt, err := s.Read()
		if err != nil {
			return s.done(err)
		}
		opt = strings.ToUpper(strings.TrimSpace(opt))
		o, ok := findOption(MainMenu, opt)
		if !ok {
			s.Printf("WARNING: %s is an invalid option.\n\n", opt)
			continue
		}
		s.Printf("You selected option %s to > %s.\n", o.Key, o.Description)

		switch o.Key {
		case "Q":
			if !warned && s.Modified() {
				warned = true
				s.Printf("WARNING: The menu has unsaved changes. Select Q again to quit anyway.\n\n")
				continue
			}
			s.Printf("Goodbye!\n\n")
			return s.done(nil)
		case "L":
			err = s.List()
		case "A":
			err = s.Add()
		case "U":
			err = s.Update()
		case "D":
			err = s.Delete()
		case "C":
			err = s.Clear()
		case "M":
			err = s.Rating()
		case "S":
			err = s.Save()
		case "R":
			err = s.Load()
		}
		if err == nil {
			s.Printf("::: Press Enter to continue\n")
			_, err = s.Read()
		}
		if err != nil {
			return s.done(err)
		}
	}
}

func (s *Shell) done(err error) error {
	if err != nil && !errors.Is(err, errInputClosed) {
		return err
	}
	s.Printf("Have a delicious day!\n")
	return nil
}

// Modified reports whether the menu has been changed since
// the shell has been started or saved the last time.
func (s *Shell) Modified() bool {
	return s.store.Fingerprint() != s.saved
}

func (s *Shell) PrintMainMenu() {
	s.Printf("==========================\n")
	s.Printf("What would you like to do?\n")
	for _, o := range MainMenu {
		s.Printf("%s - %s\n", o.Key, o.Description)
	}
	s.Printf("==========================\n")
}

func (s *Shell) listOptions(nameOnly bool) ListOptions {
	return ListOptions{
		NameOnly:  nameOnly,
		ShowIndex: true,
		Start:     s.opts.StartIndex(),
	}
}

func (s *Shell) List() error {
	if s.store.IsEmpty() {
		s.Printf("WARNING: There is nothing to display!\n")
		return nil
	}
	sel, err := s.Select("List", ListMenu, true, false)
	if err != nil {
		return err
	}
	opts := s.listOptions(false)
	if sel == "V" {
		opts.Filter = menu.VegetarianOnly
	}
	PrintMenu(s.out, s.store, s.opts.SpiceScale(), opts)
	return nil
}

func (s *Shell) Add() error {
	scale := s.opts.SpiceScale()
	for {
		s.Printf("::: Enter each required field, separated by commas.\n")
		s.Printf("::: name of the dish, calories, price, is it vegetarian ( yes | no ), spicy_level ( %s )\n", scale.Describe())
		line, err := s.Read()
		if err != nil {
			return err
		}
		d, err := dish.Build(SplitRecord(line), scale)
		var cerr *dish.FieldCountError
		var verr *dish.ValidationError
		switch {
		case err == nil:
			s.store.Append(d)
			s.Printf("Successfully added a new dish!\n")
			PrintDish(s.out, d, scale)
		case errors.As(err, &cerr):
			s.Printf("WARNING: invalid number of fields!\n")
			s.Printf("You provided %d, instead of the expected %d.\n\n", cerr.Got, len(dish.Fields))
		case errors.As(err, &verr):
			s.Printf("WARNING: invalid dish field %s: |%s|\n\n", verr.Field, verr.Value)
		default:
			return err
		}
		ok, err := s.Continue("Would you like to add another dish?", "continue")
		if err != nil || !ok {
			return err
		}
	}
}

func (s *Shell) Update() error {
	scale := s.opts.SpiceScale()
	start := s.opts.StartIndex()
	for {
		if s.store.IsEmpty() {
			s.Printf("WARNING: There is nothing to update!\n")
			return nil
		}
		s.Printf("::: Which dish would you like to update?\n")
		PrintMenu(s.out, s.store, scale, s.listOptions(true))
		s.Printf("::: Enter the number corresponding to the dish.\n")
		idx, err := s.Read()
		if err != nil {
			return err
		}
		i, err := s.store.ResolveIndex(idx, start)
		if err != nil {
			s.Printf("WARNING: |%s| is an invalid dish number!\n", idx)
		} else {
			d := s.store.Dishes()[i]
			var options []Option
			for _, f := range dish.Fields {
				v, _ := d.Get(f)
				options = append(options, Option{f, v})
			}
			field, err := s.Select("update", options, false, true)
			if err != nil {
				return err
			}
			if field == GO_BACK {
				return nil
			}
			s.Printf("::: Enter a new value for the field |%s|\n", field)
			value, err := s.Read()
			if err != nil {
				return err
			}
			d, err = s.store.UpdateField(idx, start, field, value, scale)
			if err != nil {
				s.Printf("WARNING: invalid information for the field |%s|!\n", field)
				s.Printf("The menu was not updated.\n")
			} else {
				s.Printf("Successfully updated the field |%s|:\n", field)
				PrintDish(s.out, d, scale)
			}
		}
		ok, err := s.Continue("Would you like to update another menu dish?", "continue")
		if err != nil || !ok {
			return err
		}
	}
}

func (s *Shell) Delete() error {
	for {
		if s.store.IsEmpty() {
			s.Printf("WARNING: There is nothing to delete!\n")
			return nil
		}
		s.Printf("Which dish would you like to delete?\n")
		s.Printf("Press A to delete the entire menu for this restaurant, %s to cancel this operation\n", GO_BACK)
		PrintMenu(s.out, s.store, s.opts.SpiceScale(), s.listOptions(true))
		opt, err := s.Read()
		if err != nil {
			return err
		}
		switch strings.ToUpper(opt) {
		case "A":
			return s.Clear()
		case GO_BACK:
			return nil
		}
		d, err := s.store.DeleteAt(opt, s.opts.StartIndex())
		var ierr *menu.InvalidIndexError
		switch {
		case err == nil:
			s.Printf("Success!\n")
			s.Printf("Deleted the dish |%s|\n", d.Name)
		case errors.Is(err, menu.ErrEmptyStore):
			s.Printf("WARNING: There is nothing to delete.\n")
		case errors.As(err, &ierr):
			s.Printf("WARNING: |%s| is an invalid dish number!\n", ierr.Index)
		default:
			return err
		}
		ok, err := s.Continue("Would you like to delete another dish?", "continue")
		if err != nil || !ok {
			return err
		}
	}
}

func (s *Shell) Clear() error {
	if s.store.IsEmpty() {
		s.Printf("WARNING: There is nothing to delete!\n")
		return nil
	}
	s.Printf("::: WARNING! Are you sure you want to delete the entire menu?\n")
	s.Printf("::: Type %s to continue the deletion.\n", CONFIRMATION)
	answer, err := s.Read()
	if err != nil {
		return err
	}
	if answer != CONFIRMATION {
		s.Printf("You entered '%s' instead of %s.\n", answer, CONFIRMATION)
		s.Printf("Canceling the deletion of the entire menu.\n")
		return nil
	}
	s.store.ClearAll()
	s.Printf("Deleted the entire menu.\n")
	return nil
}

func (s *Shell) Rating() error {
	PrintRating(s.out, report.ExpenseRating(s.store))
	s.Printf("\n")
	return nil
}

func (s *Shell) Save() error {
	files := s.opts.Files()
	for {
		s.Printf("::: Enter the filename ending with '%s'.\n", files.Extension())
		name, err := s.Read()
		if err != nil {
			return err
		}
		err = files.Save(s.store, name)
		if err == nil {
			s.saved = s.store.Fingerprint()
			s.Printf("Successfully saved restaurant menu to |%s|\n", name)
			return nil
		}
		var nerr *storage.InvalidDestinationNameError
		if !errors.As(err, &nerr) {
			s.Printf("WARNING: %s\n", err)
		} else {
			s.Printf("WARNING: |%s| is an invalid file name!\n", name)
		}
		ok, err := s.Continue("Would you like to try again?", "try again")
		if err != nil || !ok {
			return err
		}
	}
}

func (s *Shell) Load() error {
	files := s.opts.Files()
	for {
		s.Printf("::: Enter the filename ending with '%s'.\n", files.Extension())
		name, err := s.Read()
		if err != nil {
			return err
		}
		r, err := files.Load(s.store, name, s.opts.SpiceScale())
		if err == nil {
			s.Printf("Successfully restored restaurant menu from |%s|\n", name)
			s.Printf("Added %d dishes.\n", r.Appended)
			if len(r.Invalid) > 0 {
				s.Printf("WARNING: skipped invalid rows %s\n", Rows(r.Invalid))
			}
			return nil
		}

		var nerr *storage.InvalidSourceNameError
		var ferr *storage.SourceNotFoundError
		switch {
		case errors.As(err, &nerr):
			s.Printf("WARNING: |%s| is an invalid file name!\n", name)
		case errors.As(err, &ferr):
			s.Printf("WARNING: |%s| was not found!\n", name)
		default:
			s.Printf("WARNING: %s\n", err)
		}
		ok, err := s.Continue("Would you like to try again?", "try again")
		if err != nil || !ok {
			return err
		}
	}
}
