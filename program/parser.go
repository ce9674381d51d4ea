// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"io"
	"log"
	"math/big"
	"slices"
	"strings"
)

// scanState is the scanner state: idle, or inside a call.
type scanState struct {
	open   bool   // Inside a call.
	kind   Kind   // Kind of the open call.
	buffer []byte // Pending operand text.
	lineNo int    // Line of the lead character.
	column int    // Column of the lead character.
	offset int    // Offset of the lead character.

	operands []int
	values   []*big.Int
}

// position is a location in the source.
type position struct {
	lineNo int
	column int
	offset int
}

// Parser is a single pass scanner for URM source text.
type Parser struct {
	Verbose bool   // If set, verbosely logs the parser actions.
	Path    string // Source name used in diagnostics.

	state        scanState
	instructions []Instruction
}

// Parse parses a source into a URM program.
func Parse(path string, text string) (prog *Program, err error) {
	parser := &Parser{Path: path}
	return parser.ParseString(text)
}

// Parse reads and parses an input stream.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return p.ParseString(string(data))
}

// ParseString parses URM source text into a program.
func (p *Parser) ParseString(text string) (prog *Program, err error) {
	if len(text) == 0 {
		err = &ErrEmptyFile{Path: p.Path}
		return
	}

	defer func() {
		if err != nil {
			err = &ErrSyntax{Path: p.Path, Err: err}
		}
	}()

	p.state = scanState{}
	p.instructions = nil

	content := strings.ToLower(text)

	pos := position{lineNo: 1}
	lineStart := 0
	comment := false
	for offset := 0; offset < len(content); offset++ {
		char := content[offset]
		pos.offset = offset
		pos.column = offset - lineStart + 1

		switch {
		case comment:
			if char == '\n' {
				comment = false
			}
		case char == '/' && offset+1 < len(content) && content[offset+1] == '/':
			comment = true
		default:
			err = p.scan(char, pos)
			if err != nil {
				return
			}
		}

		if char == '\n' {
			pos.lineNo++
			lineStart = offset + 1
		}
	}

	if p.state.open {
		err = &ErrUnclosedParenthesis{
			LineNo: p.state.lineNo,
			Column: p.state.column,
			Offset: p.state.offset,
		}
		return
	}

	prog = p.link()

	return
}

// scan advances the state machine by one character.
func (p *Parser) scan(char byte, pos position) (err error) {
	kind, lead := kindMap[char]

	switch {
	case lead:
		if p.state.open {
			err = &ErrUnclosedParenthesis{LineNo: pos.lineNo, Column: pos.column, Offset: pos.offset}
			return
		}
		if p.Verbose {
			log.Printf("%v:%v: %v(", pos.lineNo, pos.column, kind)
		}
		p.state = scanState{
			open:   true,
			kind:   kind,
			lineNo: pos.lineNo,
			column: pos.column,
			offset: pos.offset,
		}
	case !p.state.open:
		// Outside of a call everything else is ignored.
	case char == '(':
	case char == ',':
		err = p.operand(pos)
	case char == ')':
		err = p.operand(pos)
		if err != nil {
			return
		}
		p.emit()
	default:
		p.state.buffer = append(p.state.buffer, char)
	}

	return
}

// operand validates the pending operand text and appends it to the call.
func (p *Parser) operand(pos position) (err error) {
	text := strings.TrimSpace(string(p.state.buffer))
	p.state.buffer = p.state.buffer[:0]

	value, ok := new(big.Int).SetString(text, 10)
	if !ok {
		err = &ErrInvalidNumber{LineNo: pos.lineNo, Value: text}
		return
	}

	minimum := p.state.kind.Minimum()
	if value.Cmp(big.NewInt(int64(minimum))) < 0 {
		err = &ErrBelowMinimum{LineNo: pos.lineNo, Value: text, Minimum: minimum}
		return
	}

	if p.state.kind == KIND_INIT {
		p.state.values = append(p.state.values, value)
		return
	}

	if !value.IsInt64() || int64(int(value.Int64())) != value.Int64() {
		err = &ErrInvalidNumber{LineNo: pos.lineNo, Value: text}
		return
	}

	register := len(p.state.operands) < p.state.kind.Registers()
	if register && value.Cmp(big.NewInt(MAX_REGISTERS)) > 0 {
		err = &ErrRegisterRange{LineNo: pos.lineNo, Register: text, Maximum: MAX_REGISTERS}
		return
	}

	p.state.operands = append(p.state.operands, int(value.Int64()))

	return
}

// emit closes the open call and appends its instruction.
func (p *Parser) emit() {
	inst := Instruction{
		Kind:   p.state.kind,
		LineNo: p.state.lineNo,
		Column: p.state.column,
	}
	if inst.Kind == KIND_INIT {
		inst.Values = p.state.values
	} else {
		inst.Operands = p.state.operands
	}

	if p.Verbose {
		log.Printf("%v:%v: %v", inst.LineNo, inst.Column, inst)
	}

	p.instructions = append(p.instructions, inst)
	p.state = scanState{}
}

// link extracts the declared initial configuration and sizes the
// register file.
func (p *Parser) link() (prog *Program) {
	insts := slices.Clone(p.instructions)

	prog = &Program{}

	// The last p(...) is the declared configuration.
	declared := -1
	for n, inst := range insts {
		if inst.Kind == KIND_INIT {
			declared = n
		}
	}
	if declared >= 0 {
		prog.Initial = insts[declared].Values
		insts = slices.Delete(insts, declared, declared+1)
		if p.Verbose {
			log.Printf("initial configuration: %v", prog.Initial)
		}
	}

	prog.Instructions = insts
	prog.MaxRegister = maxRegister(insts)

	if p.Verbose {
		log.Printf("registers: %v", prog.MaxRegister)
	}

	return
}
