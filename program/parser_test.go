package program

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/urm/translate"
)

func bigStrings(values []*big.Int) (text []string) {
	for _, value := range values {
		text = append(text, value.String())
	}
	return
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"p(0,0)",
		"s(1)",
		"s(1)",
		"j(1,1,5)",
		"s(2)",
	}

	prog, err := Parse("scenario.urm", strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Instruction{
		{Kind: KIND_SUCCESSOR, Operands: []int{1}, LineNo: 2, Column: 1},
		{Kind: KIND_SUCCESSOR, Operands: []int{1}, LineNo: 3, Column: 1},
		{Kind: KIND_JUMP, Operands: []int{1, 1, 5}, LineNo: 4, Column: 1},
		{Kind: KIND_SUCCESSOR, Operands: []int{2}, LineNo: 5, Column: 1},
	}

	assert.Equal(expected, prog.Instructions)
	assert.Equal([]string{"0", "0"}, bigStrings(prog.Initial))
	assert.Equal(2, prog.MaxRegister)
	assert.False(prog.Registerless())
}

func TestParserReader(t *testing.T) {
	assert := assert.New(t)

	parser := &Parser{Path: "reader.urm"}
	prog, err := parser.Parse(strings.NewReader("z(3) t(3,1)"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Instructions))
	assert.Equal(3, prog.MaxRegister)
	assert.Nil(prog.Initial)
	assert.Equal(6, prog.Instructions[1].Column)
}

func TestParserComments(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// p(1) is not a configuration here",
		"S(1) // increment first",
		"t(1, // source",
		"  2) z(2)",
	}

	prog, err := Parse("", strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Instruction{
		{Kind: KIND_SUCCESSOR, Operands: []int{1}, LineNo: 2, Column: 1},
		{Kind: KIND_TRANSFER, Operands: []int{1, 2}, LineNo: 3, Column: 1},
		{Kind: KIND_ZERO, Operands: []int{2}, LineNo: 4, Column: 6},
	}

	assert.Equal(expected, prog.Instructions)
	assert.Nil(prog.Initial)
}

func TestParserIdempotent(t *testing.T) {
	assert := assert.New(t)

	text := "p(3, 1 , 4)\nz(1)\nj(2,3,1)\ns(5)\n"
	parser := &Parser{}

	first, err := parser.ParseString(text)
	assert.NoError(err)
	second, err := parser.ParseString(text)
	assert.NoError(err)

	assert.Equal(first, second)
	assert.Equal([]string{"3", "1", "4"}, bigStrings(second.Initial))
}

func TestParserMaxRegister(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		text     string
		expected int
	}{
		{"zero", "z(4)", 4},
		{"successor", "s(2) s(7)", 7},
		{"transfer", "t(9,3)", 9},
		{"jump_target", "j(1,2,30)", 2},
		{"init_ignored", "p(1,2,3,4,5) s(2)", 2},
	}

	for _, entry := range table {
		prog, err := Parse(entry.name, entry.text)
		assert.NoError(err, entry.name)
		if err != nil {
			continue
		}
		assert.Equal(entry.expected, prog.MaxRegister, entry.name)
	}
}

func TestParserRegisterless(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("", "p(4, 5)")
	assert.NoError(err)
	assert.True(prog.Registerless())
	assert.Equal(0, len(prog.Instructions))
	assert.Equal(2, prog.Size(prog.Initial))
	assert.Equal(1, prog.Size(nil))
}

func TestParserMultipleInit(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("", "p(1)\ns(1)\np(7,8)")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]string{"7", "8"}, bigStrings(prog.Initial))
	assert.Equal(2, len(prog.Instructions))
	assert.Equal(KIND_INIT, prog.Instructions[0].Kind)
	assert.False(prog.Instructions[0].Valid())
	assert.Equal(KIND_SUCCESSOR, prog.Instructions[1].Kind)
}

func TestParserEmpty(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("empty.urm", "")
	var empty *ErrEmptyFile
	assert.True(errors.As(err, &empty))
	if empty != nil {
		assert.Equal("empty.urm", empty.Path)
	}
	assert.True(IsDiagnostic(err))

	// Whitespace is not empty.
	prog, err := Parse("blank.urm", " \n")
	assert.NoError(err)
	assert.True(prog.Registerless())
}

func TestParserUnclosed(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name   string
		text   string
		lineNo int
		column int
		offset int
	}{
		{"same_line", "z(1 s(1)", 1, 5, 4},
		{"next_line", "z(1\ns(2)", 2, 1, 4},
		{"indented", "s(1)\n  j(1,2,3\n  t(1,2)", 3, 3, 17},
		{"end_of_file", "s(1)\nz(1", 2, 1, 5},
		{"lead_in_operand", "t(1,p)", 1, 5, 4},
		{"before_minimum", "z(0 s(1)", 1, 5, 4},
	}

	for _, entry := range table {
		_, err := Parse(entry.name, entry.text)
		var unclosed *ErrUnclosedParenthesis
		assert.True(errors.As(err, &unclosed), entry.name)
		if unclosed == nil {
			continue
		}
		assert.Equal(entry.lineNo, unclosed.LineNo, entry.name)
		assert.Equal(entry.column, unclosed.Column, entry.name)
		assert.Equal(entry.offset, unclosed.Offset, entry.name)
	}
}

func TestParserNumbers(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name   string
		text   string
		lineNo int
		value  string
	}{
		{"letters", "s(a)", 1, "a"},
		{"empty_call", "s(1)\nz()", 2, ""},
		{"empty_operand", "t(1,,2)", 1, ""},
		{"fraction", "\n\ns(1.5)", 3, "1.5"},
		{"inner_space", "z(1 2)", 1, "1 2"},
		{"overflow", "z(99999999999999999999999)", 1, "99999999999999999999999"},
	}

	for _, entry := range table {
		_, err := Parse(entry.name, entry.text)
		var number *ErrInvalidNumber
		assert.True(errors.As(err, &number), entry.name)
		if number == nil {
			continue
		}
		assert.Equal(entry.lineNo, number.LineNo, entry.name)
		assert.Equal(entry.value, number.Value, entry.name)
	}

	// p(...) values are arbitrary precision.
	prog, err := Parse("", "p(99999999999999999999999) s(1)")
	assert.NoError(err)
	assert.Equal([]string{"99999999999999999999999"}, bigStrings(prog.Initial))
}

func TestParserMinimum(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name    string
		text    string
		lineNo  int
		minimum int
	}{
		{"zero", "z(0)", 1, 1},
		{"transfer", "s(1)\nt(1,0)", 2, 1},
		{"jump_target", "j(1,1,0)", 1, 1},
		{"negative_init", "p(1,-1)", 1, 0},
	}

	for _, entry := range table {
		_, err := Parse(entry.name, entry.text)
		var below *ErrBelowMinimum
		assert.True(errors.As(err, &below), entry.name)
		if below == nil {
			continue
		}
		assert.Equal(entry.lineNo, below.LineNo, entry.name)
		assert.Equal(entry.minimum, below.Minimum, entry.name)
	}

	_, err := Parse("", "p(0,0)\ns(1)")
	assert.NoError(err)
}

func TestParserRegisterRange(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		text     string
		lineNo   int
		register string
	}{
		{"zero", "z(1048577)", 1, "1048577"},
		{"transfer_destination", "s(1)\nt(1,100000000000000)", 2, "100000000000000"},
		{"jump_register", "j(2000000,1,1)", 1, "2000000"},
	}

	for _, entry := range table {
		_, err := Parse(entry.name, entry.text)
		var register *ErrRegisterRange
		assert.True(errors.As(err, &register), entry.name)
		assert.True(IsDiagnostic(err), entry.name)
		if register == nil {
			continue
		}
		assert.Equal(entry.lineNo, register.LineNo, entry.name)
		assert.Equal(entry.register, register.Register, entry.name)
		assert.Equal(MAX_REGISTERS, register.Maximum, entry.name)
	}

	// The bound itself is allowed, and jump targets are not registers.
	prog, err := Parse("", "z(1048576) j(1,1,5000000)")
	assert.NoError(err)
	if prog != nil {
		assert.Equal(MAX_REGISTERS, prog.MaxRegister)
	}
}

func TestParserMessages(t *testing.T) {
	assert := assert.New(t)

	translate.SetLanguage(language.English)

	_, err := Parse("prog.urm", "z(0)")
	assert.EqualError(err, "prog.urm: value 0 below 1 at line 1")

	_, err = Parse("", "z(1 s(1)")
	assert.EqualError(err, "unclosed parenthesis at line 1 (column 5)")

	_, err = Parse("", "s(x)")
	assert.EqualError(err, "invalid numeric value 'x' at line 1")

	_, err = Parse("gone.urm", "")
	assert.EqualError(err, "empty file gone.urm")

	translate.SetLanguage(language.Spanish)
	defer translate.SetLanguage(language.English)

	_, err = Parse("", "z(0)")
	assert.EqualError(err, "Valor 0 menor a 1 en línea 1")

	// Sentinels render in the current language.
	assert.EqualError(ErrMissingInitialConfiguration, "No se encontró una configuración inicial. Asegúrate de incluir una en el archivo, o especificarla al correr este programa.")
	translate.SetLanguage(language.English)
	assert.EqualError(ErrMissingInitialConfiguration, "no initial configuration")
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("", "p(0, 12) j(1,2,5) t(3,4) z(1) s(2) p(1)")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	var text []string
	for _, inst := range prog.Instructions {
		text = append(text, inst.String())
	}
	assert.Equal([]string{"P(0, 12)", "J(1, 2, 5)", "T(3, 4)", "Z(1)", "S(2)"}, text)
}

func TestInstructionValid(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("", "z(1,2) s(1) t(1) t(1,2) j(1,2) j(1,2,3)")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	var valid []bool
	for _, inst := range prog.Instructions {
		valid = append(valid, inst.Valid())
	}
	assert.Equal([]bool{false, true, false, true, false, true}, valid)

	// Short jumps only contribute the registers they name.
	assert.Equal(2, prog.MaxRegister)
}

func TestIsDiagnostic(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsDiagnostic(ErrMissingInitialConfiguration))
	assert.True(IsDiagnostic(&ErrInstructionInvalid{Token: "P(1)"}))
	assert.True(IsDiagnostic(&ErrSyntax{Err: &ErrBelowMinimum{LineNo: 1}}))
	assert.True(IsDiagnostic(&ErrConfiguration{Text: "x"}))
	assert.True(IsDiagnostic(ErrConfigurationValue("-1")))
	assert.False(IsDiagnostic(errors.New("disk on fire")))
	assert.False(IsDiagnostic(nil))
}
