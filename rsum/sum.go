package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a token that is not a number.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse '%s'", e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// tokenize drops thousands separators and splits on single newlines and
// spaces. Runs of spaces, tabs and carriage returns are not collapsed; they
// end up as tokens of their own and fail to parse.
func tokenize(raw string) []string {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))

	var tokens []string
	for _, line := range strings.Split(s, "\n") {
		tokens = append(tokens, strings.Split(line, " ")...)
	}

	return tokens
}

// parseFloat accepts decimal notation only. strconv also takes hex floats and
// underscore digit separators, which are not numbers here.
func parseFloat(tok string) (float64, error) {
	if strings.ContainsAny(tok, "xX_") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: tok, Err: strconv.ErrSyntax}
	}

	return strconv.ParseFloat(tok, 32)
}

func parseNumbers(tokens []string) ([]float32, error) {
	nums := make([]float32, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseFloat(tok)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &ParseError{Token: tok, Err: err}
		}

		nums = append(nums, float32(v))
	}

	return nums, nil
}

// parseAndSum adds every number in raw, in input order. Nothing is summed if
// any token fails to parse.
func parseAndSum(raw string) (float32, error) {
	nums, err := parseNumbers(tokenize(raw))
	if err != nil {
		return 0, err
	}

	var total float32
	for _, v := range nums {
		total += v
	}

	return total, nil
}
