package machine

import (
	"fmt"
	"math/big"
	"strings"
)

// Registers is the register file. It is sized once and never grows.
type Registers struct {
	Data []*big.Int
}

// NewRegisters creates a zeroed register file.
func NewRegisters(size int) (r *Registers) {
	r = &Registers{
		Data: make([]*big.Int, size),
	}
	for n := range r.Data {
		r.Data[n] = new(big.Int)
	}

	return
}

// Len is the number of registers.
func (r *Registers) Len() int {
	return len(r.Data)
}

// check panics on an index outside the register file. Parsed programs
// never reference such a register.
func (r *Registers) check(index int) {
	if index < 0 || index >= len(r.Data) {
		panic(fmt.Sprintf("register %d outside register file of %d", index, len(r.Data)))
	}
}

// Get returns the value of a register. The value must not be modified.
func (r *Registers) Get(index int) *big.Int {
	r.check(index)
	return r.Data[index]
}

// Zero clears a register.
func (r *Registers) Zero(index int) {
	r.check(index)
	r.Data[index].SetInt64(0)
}

// Increment adds one to a register.
func (r *Registers) Increment(index int) {
	r.check(index)
	value := r.Data[index]
	value.Add(value, big.NewInt(1))
}

// Copy sets dst to the value of src. The registers do not alias.
func (r *Registers) Copy(src, dst int) {
	r.check(src)
	r.check(dst)
	r.Data[dst].Set(r.Data[src])
}

// Equal compares two registers.
func (r *Registers) Equal(a, b int) bool {
	r.check(a)
	r.check(b)
	return r.Data[a].Cmp(r.Data[b]) == 0
}

// Load sets the registers from an initial configuration, zeroing the rest.
// Values beyond the register file are dropped.
func (r *Registers) Load(initial []*big.Int) {
	for n, value := range r.Data {
		if n < len(initial) && initial[n] != nil {
			value.Set(initial[n])
		} else {
			value.SetInt64(0)
		}
	}
}

// Snapshot returns a copy of the register values.
func (r *Registers) Snapshot() (values []*big.Int) {
	values = make([]*big.Int, len(r.Data))
	for n, value := range r.Data {
		values[n] = new(big.Int).Set(value)
	}

	return
}

// String returns the register values separated by spaces.
func (r *Registers) String() string {
	text := make([]string, len(r.Data))
	for n, value := range r.Data {
		text[n] = value.String()
	}

	return strings.Join(text, " ")
}
