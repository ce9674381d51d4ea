package program

import (
	"errors"
	"strconv"

	"github.com/ezrec/urm/translate"
)

var f = translate.From

// errorText is a sentinel error translated when rendered.
type errorText string

func (err errorText) Error() string {
	return f(string(err))
}

var (
	// Execution errors
	ErrMissingInitialConfiguration error = errorText("no initial configuration")
)

// ErrEmptyFile is returned for a zero-length source.
type ErrEmptyFile struct {
	Path string
}

func (err *ErrEmptyFile) Error() string {
	return f("empty file %v", err.Path)
}

// ErrUnclosedParenthesis is returned when a call is opened while another
// is still open, or when the source ends inside a call.
type ErrUnclosedParenthesis struct {
	LineNo int
	Column int
	Offset int // Byte offset in the source.
}

func (err *ErrUnclosedParenthesis) Error() string {
	return f("unclosed parenthesis at line %d (column %d)", err.LineNo, err.Column)
}

// ErrInvalidNumber is returned for an operand that is not an integer.
type ErrInvalidNumber struct {
	LineNo int
	Value  string
}

func (err *ErrInvalidNumber) Error() string {
	return f("invalid numeric value '%v' at line %d", err.Value, err.LineNo)
}

// ErrBelowMinimum is returned for an operand under the minimum of its kind.
type ErrBelowMinimum struct {
	LineNo  int
	Value   string
	Minimum int
}

func (err *ErrBelowMinimum) Error() string {
	return f("value %v below %d at line %d", err.Value, err.Minimum, err.LineNo)
}

// ErrRegisterRange is returned for a register beyond MAX_REGISTERS.
// LineNo is 0 when the register file is sized from an initial
// configuration rather than from a source line.
type ErrRegisterRange struct {
	LineNo   int
	Register string
	Maximum  int
}

func (err *ErrRegisterRange) Error() string {
	maximum := strconv.Itoa(err.Maximum)
	if err.LineNo == 0 {
		return f("register %v above %v", err.Register, maximum)
	}
	return f("register %v above %v at line %d", err.Register, maximum, err.LineNo)
}

// ErrInstructionInvalid is returned when execution reaches an instruction
// it cannot dispatch.
type ErrInstructionInvalid struct {
	Token string
}

func (err *ErrInstructionInvalid) Error() string {
	return f("invalid instruction \"%v\"", err.Token)
}

// ErrSyntax locates a parse diagnostic in a named source.
type ErrSyntax struct {
	Path string
	Err  error
}

func (err *ErrSyntax) Error() string {
	if len(err.Path) == 0 {
		return err.Err.Error()
	}
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrConfiguration is returned for an initial configuration that cannot
// be evaluated.
type ErrConfiguration struct {
	Text string
	Err  error
}

func (err *ErrConfiguration) Error() string {
	if err.Err == nil {
		return f("'%v' is not a valid configuration", err.Text)
	}
	return f("'%v' is not a valid configuration", err.Text) + ": " + err.Err.Error()
}

func (err *ErrConfiguration) Unwrap() error {
	return err.Err
}

// ErrConfigurationValue is returned for a configuration entry that is not
// a non-negative integer.
type ErrConfigurationValue string

func (err ErrConfigurationValue) Error() string {
	return f("'%v' is not a non-negative integer", string(err))
}

// IsDiagnostic reports whether err is, or wraps, one of the interpreter
// diagnostics rather than an I/O or system failure.
func IsDiagnostic(err error) bool {
	var (
		empty    *ErrEmptyFile
		unclosed *ErrUnclosedParenthesis
		number   *ErrInvalidNumber
		minimum  *ErrBelowMinimum
		register *ErrRegisterRange
		invalid  *ErrInstructionInvalid
		config   *ErrConfiguration
		value    ErrConfigurationValue
	)

	switch {
	case errors.Is(err, ErrMissingInitialConfiguration):
	case errors.As(err, &empty):
	case errors.As(err, &unclosed):
	case errors.As(err, &number):
	case errors.As(err, &minimum):
	case errors.As(err, &register):
	case errors.As(err, &invalid):
	case errors.As(err, &config):
	case errors.As(err, &value):
	default:
		return false
	}

	return true
}
