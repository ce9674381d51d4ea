// Package library finds URM programs in a program directory.
package library

import (
	"io/fs"
	"iter"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/ezrec/urm/program"
	"github.com/ezrec/urm/translate"
)

var f = translate.From

// EXTENSION is the program file name extension.
const EXTENSION = ".urm"

var programName = regexp.MustCompile("(?i)" + regexp.QuoteMeta(EXTENSION) + "$")

// ErrNoPrograms is returned when a program directory holds no program.
type ErrNoPrograms struct {
	Dir string
}

func (err *ErrNoPrograms) Error() string {
	return f("no programs found; create a .urm file in %v", err.Dir)
}

// Library is a set of programs stored in a file system.
type Library struct {
	Verbose  bool     // If set, logs the scanned programs.
	Dir      string   // Display name of the file system root.
	Programs []string // Slash separated program paths, sorted.

	filesys fs.FS
}

// Open scans a program directory, creating it if it does not exist.
func Open(dir string) (lib *Library, err error) {
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return
	}

	lib = &Library{Dir: dir}
	err = lib.Unmarshal(os.DirFS(dir))
	if err != nil {
		lib = nil
		return
	}

	return
}

// Unmarshal scans a file system for program files.
func (lib *Library) Unmarshal(filesys fs.FS) (err error) {
	lib.filesys = filesys
	lib.Programs = nil

	err = fs.WalkDir(filesys, ".", func(name string, d fs.DirEntry, err_in error) (err error) {
		if err_in != nil {
			err = err_in
			return
		}
		if d.IsDir() {
			return
		}
		if !programName.MatchString(d.Name()) {
			return
		}

		if lib.Verbose {
			log.Printf("library: %v", name)
		}

		lib.Programs = append(lib.Programs, name)

		return
	})
	if err != nil {
		return
	}

	slices.Sort(lib.Programs)

	return
}

// Empty reports whether the library holds no program.
func (lib *Library) Empty() bool {
	return len(lib.Programs) == 0
}

// Check returns ErrNoPrograms for an empty library.
func (lib *Library) Check() (err error) {
	if lib.Empty() {
		err = &ErrNoPrograms{Dir: lib.Dir}
	}

	return
}

// All iterates over the programs by their 1-based selection number.
func (lib *Library) All() iter.Seq2[int, string] {
	return func(yield func(number int, name string) bool) {
		for n, name := range lib.Programs {
			if !yield(n+1, name) {
				return
			}
		}
	}
}

// Load reads and parses a program of the library.
func (lib *Library) Load(name string) (prog *program.Program, err error) {
	data, err := fs.ReadFile(lib.filesys, name)
	if err != nil {
		return
	}

	parser := &program.Parser{
		Verbose: lib.Verbose,
		Path:    filepath.Join(lib.Dir, filepath.FromSlash(name)),
	}
	if len(lib.Dir) == 0 {
		parser.Path = name
	}

	prog, err = parser.ParseString(string(data))

	return
}
