package program

import (
	"iter"
	"math/big"
)

// Program is a parsed URM program.
type Program struct {
	Instructions []Instruction // Executable instructions.
	Initial      []*big.Int    // Declared initial configuration, nil if none.
	MaxRegister  int           // Highest register referenced, 0 if none.
}

// Registerless reports a degenerate program that references no register.
func (prog *Program) Registerless() bool {
	return prog.MaxRegister == 0
}

// Size is the register file size needed to run the program from the
// given initial configuration. It is never less than one, so that the
// result register always exists.
func (prog *Program) Size(initial []*big.Int) int {
	return max(prog.MaxRegister, len(initial), 1)
}

// At returns the instruction at a zero-based program counter.
func (prog *Program) At(pc int) (inst Instruction, ok bool) {
	if pc < 0 || pc >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[pc], true
}

// Lines iterates over the executable instructions by their 1-based
// jump target number.
func (prog *Program) Lines() iter.Seq2[int, Instruction] {
	return func(yield func(line int, inst Instruction) bool) {
		for n, inst := range prog.Instructions {
			if !yield(n+1, inst) {
				return
			}
		}
	}
}

// maxRegister finds the highest register named by any instruction.
func maxRegister(insts []Instruction) (highest int) {
	for _, inst := range insts {
		for _, reg := range inst.Registers() {
			highest = max(highest, reg)
		}
	}

	return
}
