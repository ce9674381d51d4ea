// Package config holds the interpreter session settings.
package config

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/urm/machine"
	"github.com/ezrec/urm/translate"
)

var f = translate.From

const (
	DEFAULT_FILE = "urm.toml" // Default configuration file name.
	PROGRAM_DIR  = "programs" // Default program directory under search_in.
)

// errorText is a sentinel error translated when rendered.
type errorText string

func (err errorText) Error() string {
	return f(string(err))
}

var (
	ErrSearchInEmpty error = errorText("search_in is empty")
)

// ErrSpaceNegative is returned for a negative column width.
type ErrSpaceNegative int

func (err ErrSpaceNegative) Error() string {
	return f("space %v is negative", int(err))
}

// ErrConfigFile locates an error in a configuration file.
type ErrConfigFile struct {
	Path string
	Err  error
}

func (err *ErrConfigFile) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrConfigFile) Unwrap() error {
	return err.Err
}

// Config holds the session settings.
type Config struct {
	SearchIn      string `toml:"search_in"`       // Base directory of the program directory.
	Programs      string `toml:"programs"`        // Program directory name under search_in.
	MaxIterations int    `toml:"max_iterations"`  // Iteration limit, negative for none.
	PrintProcess  bool   `toml:"print_process"`   // Trace every step.
	Debug         bool   `toml:"debug"`           // Verbose component logging.
	Verbose       bool   `toml:"verbose"`         // Print the program frame.
	UseFileConfig bool   `toml:"use_file_config"` // Use the p(...) of the file when present.
	Space         int    `toml:"space"`           // Register column width, 0 for automatic.
}

// Default returns the default settings.
func Default() (cfg *Config) {
	cfg = &Config{
		SearchIn:      "./",
		Programs:      PROGRAM_DIR,
		MaxIterations: machine.UNLIMITED,
		Verbose:       true,
		UseFileConfig: true,
		Space:         4,
	}

	return
}

// Load reads the settings from a TOML file over the defaults.
// A missing file yields the defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfigFile{Path: path, Err: err}
		}
	}()

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		err = nil
		return
	}
	if err != nil {
		return
	}

	for _, key := range meta.Undecoded() {
		log.Printf("config: %v: unknown key %v", path, key)
	}

	err = cfg.Validate()

	return
}

// Decode reads the settings from a TOML stream over the defaults.
func Decode(input io.Reader) (cfg *Config, err error) {
	cfg = Default()

	_, err = toml.NewDecoder(input).Decode(cfg)
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// Encode writes the settings as TOML.
func (cfg *Config) Encode(output io.Writer) (err error) {
	return toml.NewEncoder(output).Encode(cfg)
}

// Validate checks the settings.
func (cfg *Config) Validate() (err error) {
	if len(cfg.SearchIn) == 0 {
		err = ErrSearchInEmpty
		return
	}

	if cfg.Space < 0 {
		err = ErrSpaceNegative(cfg.Space)
		return
	}

	return
}

// ProgramDir is the directory scanned for programs.
func (cfg *Config) ProgramDir() string {
	return filepath.Join(cfg.SearchIn, cfg.Programs)
}

// Save writes the settings to a file, creating it if needed.
func (cfg *Config) Save(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = cfg.Encode(file)

	return
}
