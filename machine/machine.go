// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"log"
	"math/big"

	"github.com/ezrec/urm/program"
)

// UNLIMITED is the iteration limit that runs a program until it halts.
const UNLIMITED = -1

// Step is the machine state after an executed instruction.
type Step struct {
	Executed   int        // Jump target number (1-based) of the executed instruction.
	LineNo     int        // Source line of the executed instruction.
	Pc         int        // Program counter of the next instruction.
	Iterations int        // Instructions executed so far.
	Registers  []*big.Int // Copy of the register file.
}

// TraceFunc observes the machine after each step.
type TraceFunc func(step Step)

// Result of a run.
type Result struct {
	Value      *big.Int // Final value of register 1.
	Iterations int      // Instructions executed.
	Exhausted  bool     // Set if the run stopped on the iteration limit.
}

// Machine is the simulation context of a URM.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Registers  *Registers // Register file.
	Pc         int        // Zero-based program counter.
	Iterations int        // Instructions executed since the reset.
	Limit      int        // Iteration limit, negative for none.
}

// NewMachine creates a machine with a register file of the given size.
func NewMachine(size int) (m *Machine) {
	m = &Machine{
		Registers: NewRegisters(size),
		Limit:     UNLIMITED,
	}

	return
}

// Reset loads an initial configuration and clears the counters.
func (m *Machine) Reset(initial []*big.Int, limit int) {
	if m.Verbose {
		log.Printf("machine: reset %v registers, limit %v", m.Registers.Len(), limit)
	}

	m.Registers.Load(initial)
	m.Pc = 0
	m.Iterations = 0
	m.Limit = limit
}

// Halted reports whether the program counter has left the program.
func (m *Machine) Halted(prog *program.Program) bool {
	return m.Pc < 0 || m.Pc >= len(prog.Instructions)
}

// Exhausted reports whether the iteration limit has been reached.
func (m *Machine) Exhausted() bool {
	if m.Limit < 0 {
		return false
	}

	return m.Iterations >= m.Limit
}

// Tick executes the instruction at the program counter.
func (m *Machine) Tick(prog *program.Program) (err error) {
	inst, ok := prog.At(m.Pc)
	if !ok {
		panic(fmt.Sprintf("tick past program end, pc %d", m.Pc))
	}

	err = m.Execute(inst)
	if err != nil {
		return
	}

	m.Iterations++

	return
}

// Execute performs a single instruction and advances the program counter.
func (m *Machine) Execute(inst program.Instruction) (err error) {
	if m.Verbose {
		log.Printf("%03d: %v", m.Pc+1, inst)
	}

	if !inst.Valid() {
		err = &program.ErrInstructionInvalid{Token: inst.String()}
		return
	}

	regs := m.Registers
	args := inst.Operands
	next := m.Pc + 1

	switch inst.Kind {
	case program.KIND_ZERO:
		regs.Zero(args[0] - 1)
	case program.KIND_SUCCESSOR:
		regs.Increment(args[0] - 1)
	case program.KIND_TRANSFER:
		regs.Copy(args[0]-1, args[1]-1)
	case program.KIND_JUMP:
		if regs.Equal(args[0]-1, args[1]-1) {
			next = args[2] - 1
		}
	case program.KIND_INIT:
		// Only the declared p(...) is removed before execution.
		err = &program.ErrInstructionInvalid{Token: inst.String()}
		return
	default:
		err = &program.ErrInstructionInvalid{Token: inst.String()}
		return
	}

	m.Pc = next

	return
}

// Step returns the current state for tracing.
func (m *Machine) Step(executed int, lineNo int) Step {
	return Step{
		Executed:   executed,
		LineNo:     lineNo,
		Pc:         m.Pc,
		Iterations: m.Iterations,
		Registers:  m.Registers.Snapshot(),
	}
}

// Run executes the program until it halts or the iteration limit is
// reached. The trace function, if any, is called after every step.
func (m *Machine) Run(prog *program.Program, trace TraceFunc) (result Result, err error) {
	for !m.Halted(prog) && !m.Exhausted() {
		executed := m.Pc + 1
		lineNo := prog.Instructions[m.Pc].LineNo
		err = m.Tick(prog)
		if err != nil {
			return
		}
		if trace != nil {
			trace(m.Step(executed, lineNo))
		}
	}

	result = Result{
		Value:      new(big.Int).Set(m.Registers.Get(0)),
		Iterations: m.Iterations,
		Exhausted:  !m.Halted(prog),
	}

	if m.Verbose {
		log.Printf("machine: result %v after %v iterations", result.Value, result.Iterations)
	}

	return
}

// String returns the current machine state as a string.
func (m *Machine) String() string {
	return fmt.Sprintf("   pc: %d\n iter: %d\n regs: %v\n", m.Pc+1, m.Iterations, m.Registers)
}
