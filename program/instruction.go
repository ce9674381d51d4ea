package program

import (
	"math/big"
	"strconv"
	"strings"
)

// Instruction is a single parsed call.
type Instruction struct {
	Kind     Kind       // Instruction kind.
	Operands []int      // Register and jump operands, as written (1-based).
	Values   []*big.Int // Values of a p(...) call.
	LineNo   int        // Line of the lead character.
	Column   int        // Column of the lead character.
}

// Registers returns the operands that name registers.
func (inst Instruction) Registers() []int {
	count := min(inst.Kind.Registers(), len(inst.Operands))
	return inst.Operands[:count]
}

// Valid reports whether the instruction can be executed.
func (inst Instruction) Valid() bool {
	arity := inst.Kind.Arity()
	return arity >= 0 && arity == len(inst.Operands)
}

// String renders the instruction the way it is shown in diagnostics,
// for example "J(1, 2, 5)".
func (inst Instruction) String() string {
	var args []string
	if inst.Kind == KIND_INIT {
		for _, value := range inst.Values {
			args = append(args, value.String())
		}
	} else {
		for _, operand := range inst.Operands {
			args = append(args, strconv.Itoa(operand))
		}
	}

	return strings.ToUpper(inst.Kind.String()) + "(" + strings.Join(args, ", ") + ")"
}
