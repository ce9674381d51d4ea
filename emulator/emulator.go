// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"log"
	"math/big"
	"strconv"
	"strings"

	"github.com/ezrec/urm/machine"
	"github.com/ezrec/urm/program"
)

const (
	DEFAULT_SPACE = 4 // Default register column width.
)

// Emulator state. Program + Machine + console frame.
type Emulator struct {
	Verbose bool             // If set, enables verbose logging.
	Program *program.Program // Reference to the program to run.
	Machine *machine.Machine // Machine of the last run.

	Limit  int       // Iteration limit, negative for none.
	Output io.Writer // If set, receives the program frame.
	Trace  bool      // If set, the frame includes every step.
	Space  int       // Register column width, 0 to size from the data.

	space int
	shown int
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *program.Program) (emu *Emulator) {
	emu = &Emulator{
		Program: prog,
		Limit:   machine.UNLIMITED,
		Space:   DEFAULT_SPACE,
	}

	return
}

// Reset prepares a fresh machine. A non-nil initial configuration
// overrides the one declared by the program.
func (emu *Emulator) Reset(initial []*big.Int) (err error) {
	prog := emu.Program

	if initial == nil {
		initial = prog.Initial
	}
	if initial == nil {
		err = program.ErrMissingInitialConfiguration
		return
	}

	if prog.Registerless() {
		log.Printf("emulator: program references no registers")
	}

	size := prog.Size(initial)
	if size > program.MAX_REGISTERS {
		err = &program.ErrRegisterRange{Register: strconv.Itoa(size), Maximum: program.MAX_REGISTERS}
		return
	}

	emu.Machine = machine.NewMachine(size)
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset(initial, emu.Limit)

	emu.shown = max(prog.MaxRegister, 1)
	emu.space = emu.Space
	if emu.space <= 0 {
		widest := 0
		for _, value := range initial {
			widest = max(widest, len(value.String()))
		}
		emu.space = widest + 2
	}

	if emu.Verbose {
		log.Printf("emulator: %v registers, %v instructions", emu.Machine.Registers.Len(), len(prog.Instructions))
	}

	return
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if the machine has halted.
func (emu *Emulator) LineNo() int {
	if emu.Machine == nil {
		return 0
	}

	inst, ok := emu.Program.At(emu.Machine.Pc)
	if !ok {
		return 0
	}

	return inst.LineNo
}

// Run resets the emulator and runs the program to completion or to the
// iteration limit.
func (emu *Emulator) Run(initial []*big.Int) (result machine.Result, err error) {
	err = emu.Reset(initial)
	if err != nil {
		return
	}

	emu.print("%v\n", f("===== Program start ====="))
	emu.print("%v%v%v\n", emu.margin(), emu.registers(emu.Machine.Registers.Data), f("<- initial"))

	var trace machine.TraceFunc
	if emu.Trace && emu.Output != nil {
		trace = func(step machine.Step) {
			emu.print("%-3v %v\n", fmt.Sprintf("I%d:", step.Executed), emu.registers(step.Registers))
		}
	}

	result, err = emu.Machine.Run(emu.Program, trace)
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Pc: emu.Machine.Pc + 1, Err: err}
		return
	}

	if result.Exhausted {
		emu.print("%v\n", f("maximum iterations reached"))
	}
	emu.print("%v%v%v\n", emu.margin(), emu.registers(emu.Machine.Registers.Data), f("<- result"))
	emu.print("%v\n", f("======= Program end ======"))

	return
}

// print writes to the frame output, if any.
func (emu *Emulator) print(format string, args ...any) {
	if emu.Output == nil {
		return
	}

	fmt.Fprintf(emu.Output, format, args...)
}

// margin aligns the initial and result rows with the step rows.
func (emu *Emulator) margin() string {
	if emu.Trace {
		return "    "
	}

	return ""
}

// registers formats the shown registers in columns, padding missing
// entries with zeros.
func (emu *Emulator) registers(values []*big.Int) string {
	var sb strings.Builder

	for n := range emu.shown {
		text := "0"
		if n < len(values) {
			text = values[n].String()
		}
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", max(emu.space-len(text), 1)))
	}

	return sb.String()
}
