// Package config loads the flavor.toml settings file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/naoina/toml"

	"github.com/flavor-lang/flavor/internal/interp"
	"github.com/flavor-lang/flavor/internal/parser"
)

// FileName is looked up in the working directory when no --config
// flag is given.
const FileName = "flavor.toml"

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type OutputConfig struct {
	Color bool
}

type ReplConfig struct {
	Prompt       string
	Continuation string
	// History is the liner history file. Empty disables history.
	History string
}

type LogConfig struct {
	// Verbosity is a log15 level: 0 crit, 1 error, 2 warn, 3 info,
	// 4 debug.
	Verbosity int
}

type LimitsConfig struct {
	MaxParseDepth int
	MaxCallDepth  int
}

// Config is the full flavor.toml document.
type Config struct {
	Output OutputConfig
	Repl   ReplConfig
	Log    LogConfig
	Limits LimitsConfig
}

// Defaults holds the settings used when no file overrides them.
var Defaults = Config{
	Output: OutputConfig{Color: true},
	Repl: ReplConfig{
		Prompt:       "flavor> ",
		Continuation: "...     ",
		History:      defaultHistory(),
	},
	Log: LogConfig{Verbosity: 2},
	Limits: LimitsConfig{
		MaxParseDepth: parser.DefaultMaxDepth,
		MaxCallDepth:  interp.DefaultMaxCallDepth,
	},
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flavor_history")
}

// Load reads file over a copy of Defaults.
func Load(file string) (Config, error) {
	cfg := Defaults

	f, err := os.Open(file)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return cfg, annotate(file, err)
	}
	return cfg, nil
}

// LoadDefault loads FileName from the working directory if it exists,
// and returns Defaults otherwise.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(FileName); errors.Is(err, os.ErrNotExist) {
		return Defaults, nil
	}
	return Load(FileName)
}

// Decode reads TOML from r into cfg, leaving absent fields untouched.
func Decode(r io.Reader, cfg *Config) error {
	return tomlSettings.NewDecoder(bufio.NewReader(r)).Decode(cfg)
}

// Encode renders cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Add file name to errors that have a line number.
func annotate(file string, err error) error {
	if _, ok := err.(*toml.LineError); ok {
		return errors.New(file + ", " + err.Error())
	}
	return err
}
