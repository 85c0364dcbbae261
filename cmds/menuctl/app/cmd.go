package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/menuctl/pkg/config"
	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	"github.com/mandelsoft/menuctl/pkg/storage"
	"github.com/mandelsoft/menuctl/pkg/utils"
)

type Options struct {
	fs         vfs.FileSystem
	configFile string
	file       string
	startIndex int
	logLevel   string
	force      bool

	config *config.Config
	files  *storage.Files
}

func (o *Options) SpiceScale() dish.SpiceScale {
	return o.config.SpiceScale
}

func (o *Options) StartIndex() int {
	return o.startIndex
}

func (o *Options) Files() *storage.Files {
	return o.files
}

// Complete determines the effective settings from the
// configuration and the explicitly given flags.
func (o *Options) Complete(flags *pflag.FlagSet) error {
	cfg, err := config.Get(o.fs, o.configFile)
	if err != nil {
		return err
	}
	o.config = cfg

	if !flags.Changed("file") {
		o.file = *cfg.File
	}
	if !flags.Changed("start-index") {
		o.startIndex = *cfg.StartIndex
	}
	if o.startIndex < 0 {
		return fmt.Errorf("start index must not be negative")
	}
	if !flags.Changed("log-level") {
		o.logLevel = *cfg.LogLevel
	}
	err = ConfigureLogging(o.logLevel)
	if err != nil {
		return err
	}
	o.files = storage.New(*cfg.Extension, o.fs)
	log.Debug("using menu file {{file}}", "file", o.file, "start", o.startIndex)
	return nil
}

// InvalidRowsError is returned when a menu file should be rewritten,
// although it contains rows which could not be loaded.
type InvalidRowsError struct {
	File string
	Rows []int
}

func (e *InvalidRowsError) Error() string {
	return fmt.Sprintf("menu file %q contains invalid rows %s, which would be lost by rewriting it (use --force to drop them)", e.File, Rows(e.Rows))
}

// LoadMenu reads the menu file used by the batch commands.
// Skipped rows are reported on w.
func (o *Options) LoadMenu(w io.Writer, missingOK bool) (*menu.Store, error) {
	s, _, err := o.load(w, missingOK)
	return s, err
}

// LoadMenuForUpdate reads the menu file for a command rewriting it.
// Invalid rows are only accepted with --force.
func (o *Options) LoadMenuForUpdate(w io.Writer, missingOK bool) (*menu.Store, error) {
	s, invalid, err := o.load(w, missingOK)
	if err != nil {
		return nil, err
	}
	if len(invalid) > 0 && !o.force {
		return nil, &InvalidRowsError{File: o.file, Rows: invalid}
	}
	return s, nil
}

func (o *Options) load(w io.Writer, missingOK bool) (*menu.Store, []int, error) {
	s := menu.New()
	r, err := o.files.Load(s, o.file, o.SpiceScale())
	if err != nil {
		var nf *storage.SourceNotFoundError
		if missingOK && errors.As(err, &nf) {
			return s, nil, nil
		}
		return nil, nil, err
	}
	if len(r.Invalid) > 0 {
		fmt.Fprintf(w, "WARNING: skipped invalid rows %s of %q\n", Rows(r.Invalid), o.file)
	}
	return s, r.Invalid, nil
}

func (o *Options) SaveMenu(s *menu.Store) error {
	return o.files.Save(s, o.file)
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "menuctl <options> <cmd> <args>",
		Short: "manage restaurant menus",
		Long: `
This command can be used to maintain a list of restaurant dishes
stored in a comma separated file, either with dedicated sub commands
or with the interactive shell.
`,
		Run: nil,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Complete(cmd.Flags())
		},
	}
	TweakCommand(maincmd)

	flags := maincmd.PersistentFlags()

	flags.StringVarP(&opts.configFile, "config", "c", "", "config file")
	flags.StringVarP(&opts.file, "file", "f", "", "menu file")
	flags.IntVarP(&opts.startIndex, "start-index", "i", 1, "first user facing dish number")
	flags.StringVarP(&opts.logLevel, "log-level", "L", "warn", "log level")
	flags.BoolVarP(&opts.force, "force", "F", false, "rewrite menu file even if invalid rows are dropped")

	maincmd.AddCommand(NewList(opts))
	maincmd.AddCommand(NewAdd(opts))
	maincmd.AddCommand(NewUpdate(opts))
	maincmd.AddCommand(NewDelete(opts))
	maincmd.AddCommand(NewRating(opts))
	maincmd.AddCommand(NewFake(opts))
	maincmd.AddCommand(NewShell(opts))
	return maincmd
}

func TweakCommand(cmd *cobra.Command) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.DisableAutoGenTag = true
}
