package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	"github.com/mandelsoft/menuctl/pkg/utils"
)

const DefaultExtension = ".csv"

// Files stores menus as comma separated files without header.
type Files struct {
	fs  vfs.FileSystem
	ext string
}

// LoadResult describes the outcome of loading a menu file.
type LoadResult struct {
	Appended int
	Invalid  []int
}

func New(ext string, fss ...vfs.FileSystem) *Files {
	return &Files{
		fs:  utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
		ext: utils.OptionalDefaulted(DefaultExtension, ext),
	}
}

func (f *Files) Extension() string {
	return f.ext
}

func (f *Files) FileSystem() vfs.FileSystem {
	return f.fs
}

func (f *Files) CheckDestination(name string) error {
	if !strings.HasSuffix(name, f.ext) {
		return &InvalidDestinationNameError{Name: name, Extension: f.ext}
	}
	return nil
}

func (f *Files) CheckSource(name string) error {
	if !strings.HasSuffix(name, f.ext) {
		return &InvalidSourceNameError{Name: name, Extension: f.ext}
	}
	fi, err := f.fs.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &SourceNotFoundError{Name: name}
		}
		return fmt.Errorf("cannot access %q: %w", name, err)
	}
	if fi.IsDir() {
		return &SourceNotFoundError{Name: name}
	}
	return nil
}

// Save writes the store to the named file. The content is written
// to a temporary file in the same directory first, which replaces the
// destination only after it has been completely written.
func (f *Files) Save(s *menu.Store, name string) (err error) {
	if err := f.CheckDestination(name); err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(name), fmt.Sprintf(".%s.%s.tmp", filepath.Base(name), uuid.NewString()))
	file, err := f.fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", name, err)
	}
	defer func() {
		if file != nil {
			file.Close()
		}
		if err != nil {
			f.fs.Remove(tmp)
		}
	}()

	w := csv.NewWriter(file)
	err = w.WriteAll(SaveToRows(s))
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	err = file.Close()
	file = nil
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}

	if _, serr := f.fs.Stat(name); serr == nil {
		err = f.fs.Remove(name)
		if err != nil {
			return fmt.Errorf("cannot replace %q: %w", name, err)
		}
	}
	err = f.fs.Rename(tmp, name)
	if err != nil {
		return fmt.Errorf("cannot replace %q: %w", name, err)
	}
	log.Debug("saved {{count}} dishes to {{file}}", "count", s.Len(), "file", name)
	return nil
}

// Load appends the valid rows of the named file to the store.
// Invalid rows are skipped and reported by their 1-based row number.
func (f *Files) Load(s *menu.Store, name string, scale dish.SpiceScale) (*LoadResult, error) {
	if err := f.CheckSource(name); err != nil {
		return nil, err
	}
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", name, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	l := newLoader(s, scale)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if err != nil && !errors.As(err, &perr) {
			return nil, fmt.Errorf("cannot read %q: %w", name, err)
		}
		l.add(record, err)
	}
	log.Debug("loaded {{count}} dishes from {{file}}", "count", l.appended, "file", name, "invalid", l.invalid)
	return &LoadResult{Appended: l.appended, Invalid: l.invalid}, nil
}
