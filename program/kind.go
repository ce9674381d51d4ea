package program

// Kind is the type of an instruction.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_ZERO      = Kind(0) // z
	KIND_SUCCESSOR = Kind(1) // s
	KIND_TRANSFER  = Kind(2) // t
	KIND_JUMP      = Kind(3) // j
	KIND_INIT      = Kind(4) // p
)

// MAX_REGISTERS bounds the register file of a program.
const MAX_REGISTERS = 1 << 20

// kindMap maps lead characters to instruction kinds.
var kindMap = map[byte]Kind{
	'z': KIND_ZERO,
	's': KIND_SUCCESSOR,
	't': KIND_TRANSFER,
	'j': KIND_JUMP,
	'p': KIND_INIT,
}

// Arity is the exact operand count of an executable kind.
// KIND_INIT takes any number of values and returns -1.
func (kind Kind) Arity() int {
	switch kind {
	case KIND_ZERO, KIND_SUCCESSOR:
		return 1
	case KIND_TRANSFER:
		return 2
	case KIND_JUMP:
		return 3
	}

	return -1
}

// Registers is the count of leading operands that name registers.
// The third operand of a jump is an instruction line, not a register.
func (kind Kind) Registers() int {
	switch kind {
	case KIND_ZERO, KIND_SUCCESSOR:
		return 1
	case KIND_TRANSFER, KIND_JUMP:
		return 2
	}

	return 0
}

// Minimum is the lowest value an operand of this kind may hold.
func (kind Kind) Minimum() int {
	if kind == KIND_INIT {
		return 0
	}

	return 1
}
