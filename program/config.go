package program

import (
	"math/big"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// maxConfigSteps bounds the evaluation of a configuration expression.
const maxConfigSteps = 1 << 20

// ParseConfiguration evaluates a caller-supplied initial configuration,
// a comma separated list of integer expressions such as "1, 3, 1 << 70".
func ParseConfiguration(text string) (values []*big.Int, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = &ErrConfiguration{Text: text}
		return
	}

	thread := starlark.Thread{Name: "configuration"}
	thread.SetMaxExecutionSteps(maxConfigSteps)
	opts := syntax.FileOptions{}
	prog := "rc=[" + text + "]\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "configuration", prog, nil)
	if err != nil {
		err = &ErrConfiguration{Text: text, Err: err}
		return
	}

	st_list, ok := dict["rc"].(*starlark.List)
	if !ok || st_list.Len() == 0 {
		err = &ErrConfiguration{Text: text}
		return
	}

	parsed := make([]*big.Int, 0, st_list.Len())
	for n := range st_list.Len() {
		item := st_list.Index(n)
		st_int, ok := item.(starlark.Int)
		if !ok {
			err = ErrConfigurationValue(item.String())
			return
		}
		value := st_int.BigInt()
		if value.Sign() < 0 {
			err = ErrConfigurationValue(item.String())
			return
		}
		parsed = append(parsed, value)
	}

	values = parsed

	return
}
