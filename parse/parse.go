package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput error returns when the line carries no values
	ErrEmptyInput = errors.New("no values entered")
	// ErrNotANumber error returns when a token is not a base 10 integer
	ErrNotANumber = errors.New("not a number")
	// ErrOutOfRange error returns when a token does not fit into an int
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidAnswer error returns when a yes/no answer is neither
	ErrInvalidAnswer = errors.New("answer y or n")
)

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

// Ints parses a list of integers separated by spaces and/or commas, a run of
// separators of either kind counts as one.
func Ints(line string) ([]int, error) {
	tokens := strings.FieldsFunc(strings.TrimSpace(line), isSeparator)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	values := make([]int, len(tokens))
	for i, t := range tokens {
		v, err := strconv.Atoi(t)
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%q is %w", t, ErrOutOfRange)
		}
		if err != nil {
			return nil, fmt.Errorf("%q is %w", t, ErrNotANumber)
		}
		values[i] = v
	}

	return values, nil
}

// YesNo parses a continuation answer.
func YesNo(line string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, ErrInvalidAnswer
}
