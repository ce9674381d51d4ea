package emulator

import (
	"github.com/ezrec/urm/translate"
)

var f = translate.From

// ErrRuntime locates a diagnostic raised while running a program.
type ErrRuntime struct {
	LineNo int // Source line of the failing instruction.
	Pc     int // Jump target number (1-based) of the failing instruction.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d, instruction %d: %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
