package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/ezrec/urm/config"
	"github.com/ezrec/urm/emulator"
	"github.com/ezrec/urm/program"
)

// ErrSelection is returned for a program number out of range.
type ErrSelection string

func (err ErrSelection) Error() string {
	return f("'%v' is not a program number", string(err))
}

// session is one interactive interpreter run.
type session struct {
	Config  *config.Config
	Initial string // Initial configuration from the command line.
	Input   *bufio.Reader
	Output  io.Writer
}

// println writes a line to the console.
func (sess *session) println(text string) {
	fmt.Fprintln(sess.Output, text)
}

// readLine prompts for and reads one line of input.
func (sess *session) readLine() (line string, err error) {
	fmt.Fprint(sess.Output, "> ")

	line, err = sess.Input.ReadString('\n')
	if errors.Is(err, io.EOF) && len(line) != 0 {
		err = nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return
	}

	line = strings.TrimSpace(line)

	return
}

// choose selects a program from the program directory. With more than
// one program the user is asked for its number until a valid one is
// entered.
func (sess *session) choose() (prog *program.Program, err error) {
	lib, err := openLibrary(sess.Config)
	if err != nil {
		return
	}

	err = lib.Check()
	if err != nil {
		return
	}

	name := lib.Programs[0]
	if len(lib.Programs) > 1 {
		sess.println(f("choose a program:"))
		for number, entry := range lib.All() {
			sess.println(fmt.Sprintf("  %d) %v", number, entry))
		}

		for {
			var line string
			line, err = sess.readLine()
			if err != nil {
				return
			}
			number, perr := strconv.Atoi(line)
			if perr != nil || number < 1 || number > len(lib.Programs) {
				sess.println(ErrSelection(line).Error())
				continue
			}
			name = lib.Programs[number-1]
			break
		}
	}

	prog, err = lib.Load(name)

	return
}

// configuration decides the initial configuration of a run: the command
// line value, else the declared one, else one read from the console.
func (sess *session) configuration(prog *program.Program) (initial []*big.Int, err error) {
	if len(sess.Initial) != 0 {
		return program.ParseConfiguration(sess.Initial)
	}

	if prog.Initial != nil && sess.Config.UseFileConfig {
		initial = prog.Initial
		return
	}

	if sess.Config.UseFileConfig {
		sess.println(f("the program has no initial configuration; you must provide one"))
	} else {
		sess.println(f("you must provide an initial configuration (set use_file_config to use the one in the file)"))
	}
	sess.println(f("enter the value of each register, separated by commas (e.g. 1, 3, 5)"))

	line, err := sess.readLine()
	if err != nil {
		return
	}

	initial, err = program.ParseConfiguration(line)

	return
}

// run executes a program and prints its result.
func (sess *session) run(prog *program.Program) (err error) {
	cfg := sess.Config

	initial, err := sess.configuration(prog)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = cfg.Debug
	emu.Limit = cfg.MaxIterations
	emu.Trace = cfg.PrintProcess
	emu.Space = cfg.Space
	if cfg.Verbose {
		emu.Output = sess.Output
	}

	result, err := emu.Run(initial)
	if err != nil {
		return
	}

	sess.println(f("Result: %v", result.Value.String()))
	sess.println(f("Iterations: %v", strconv.Itoa(result.Iterations)))

	return
}
