package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/menuctl/pkg/dish"
	"github.com/mandelsoft/menuctl/pkg/menu"
	"github.com/mandelsoft/menuctl/pkg/storage"
	"github.com/mandelsoft/menuctl/pkg/utils"
)

const CONFIG_FILE = ".menuctl"

const (
	ENV_FILE        = "MENUCTL_FILE"
	ENV_START_INDEX = "MENUCTL_START_INDEX"
)

type Config struct {
	SpiceScale dish.SpiceScale `json:"spiceScale,omitempty"`
	StartIndex *int            `json:"startIndex,omitempty"`
	Extension  *string         `json:"extension,omitempty"`
	File       *string         `json:"file,omitempty"`
	LogLevel   *string         `json:"logLevel,omitempty"`
	Menu       []dish.Dish     `json:"menu,omitempty"`
}

func Default() *Config {
	return &Config{
		SpiceScale: dish.DefaultSpiceScale(),
		StartIndex: utils.Pointer(1),
		Extension:  utils.Pointer(storage.DefaultExtension),
		File:       utils.Pointer("menu" + storage.DefaultExtension),
		LogLevel:   utils.Pointer("warn"),
		Menu: []dish.Dish{
			{Name: "burrito", Calories: 500, Price: 12.90, Vegetarian: "yes", SpicyLevel: 2},
			{Name: "rice bowl", Calories: 400, Price: 14.90, Vegetarian: "no", SpicyLevel: 3},
			{Name: "margherita", Calories: 800, Price: 18.90, Vegetarian: "no", SpicyLevel: 2},
		},
	}
}

// Locations provides the standard config file locations
// in ascending precedence.
func Locations() []string {
	var list []string

	dir, err := os.UserHomeDir()
	if err == nil {
		list = append(list, filepath.Join(dir, CONFIG_FILE))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		list = append(list, filepath.Join(dir, CONFIG_FILE))
	}
	dir, err = os.Getwd()
	if err == nil {
		list = append(list, filepath.Join(dir, CONFIG_FILE))
	}
	return list
}

// Get determines the effective configuration from the defaults, the
// standard locations, an optional explicit config file, which must
// exist, and the environment.
func Get(fs vfs.FileSystem, explicit string) (*Config, error) {
	cfg := Default()

	for _, l := range Locations() {
		c, err := ReadConfig(fs, l)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, c)
	}

	if explicit != "" {
		c, err := ReadConfig(fs, explicit)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("config file %q not found", explicit)
		}
		MergeConfig(cfg, c)
	}

	if v := os.Getenv(ENV_FILE); v != "" {
		cfg.File = utils.Pointer(v)
	}
	if v := os.Getenv(ENV_START_INDEX); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", ENV_START_INDEX, v, err)
		}
		cfg.StartIndex = utils.Pointer(i)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// ReadConfig reads a config file. Environment variables
// referenced in the file content are substituted.
// A missing file results in a nil config.
func ReadConfig(fs vfs.FileSystem, path string) (*Config, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}

	content, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	var cfg Config
	err = yaml.UnmarshalStrict([]byte(content), &cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, nil
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.SpiceScale != nil {
		cfg.SpiceScale = add.SpiceScale
	}
	if add.StartIndex != nil {
		cfg.StartIndex = add.StartIndex
	}
	if add.Extension != nil {
		cfg.Extension = add.Extension
	}
	if add.File != nil {
		cfg.File = add.File
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
	if add.Menu != nil {
		cfg.Menu = add.Menu
	}
}

// Validate validates a complete configuration.
func (c *Config) Validate() error {
	if len(c.SpiceScale) == 0 {
		return fmt.Errorf("spice scale must not be empty")
	}
	if c.StartIndex == nil || *c.StartIndex < 0 {
		return fmt.Errorf("start index must be a non-negative integer")
	}
	if c.Extension == nil {
		return fmt.Errorf("file extension required")
	}
	if !strings.HasPrefix(*c.Extension, ".") || len(*c.Extension) < 2 {
		return fmt.Errorf("invalid file extension %q", *c.Extension)
	}
	for i, d := range c.Menu {
		if err := dish.Check(d, c.SpiceScale); err != nil {
			return fmt.Errorf("menu entry %d: %w", i+1, err)
		}
	}
	return nil
}

// Seed provides a new store filled with the configured menu.
// Every entry passes the dish builder, so prices are rounded
// like for interactively added dishes.
func (c *Config) Seed() (*menu.Store, error) {
	s := menu.New()
	for i, d := range c.Menu {
		n, err := dish.Build(d.Record(), c.SpiceScale)
		if err != nil {
			return nil, fmt.Errorf("menu entry %d: %w", i+1, err)
		}
		s.Append(n)
	}
	return s, nil
}
