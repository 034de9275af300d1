package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

type inputKind int

const (
	inputStdin inputKind = iota
	inputLiteral
	inputFile
	inputHelp
)

func (k inputKind) String() string {
	switch k {
	case inputStdin:
		return "stdin"
	case inputLiteral:
		return "literal"
	case inputFile:
		return "file"
	case inputHelp:
		return "help"
	}
	return fmt.Sprintf("inputKind(%d)", int(k))
}

// input is where the numbers come from. text is set for inputLiteral, path
// for inputFile.
type input struct {
	kind inputKind
	text string
	path string
}

var (
	errMissingPath = errors.New("Missing path to file.")
	errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// resolveInput picks the input from os.Args style arguments. Only the first
// argument after the program name is inspected, so "-5 3" is a literal and
// not an unknown flag.
func resolveInput(args []string) (input, error) {
	if len(args) < 2 {
		return input{kind: inputStdin}, nil
	}

	switch args[1] {
	case "-h":
		return input{kind: inputHelp}, nil
	case "-f":
		if len(args) < 3 {
			return input{}, errMissingPath
		}
		return input{kind: inputFile, path: args[2]}, nil
	}

	// Shells split "1 2 3" into separate arguments unless quoted.
	return input{kind: inputLiteral, text: strings.Join(args[1:], " ")}, nil
}

type readError struct {
	source string
	err    error
}

func (e *readError) Error() string {
	return fmt.Sprintf("%s: %v", e.source, e.err)
}

func (e *readError) Unwrap() error { return e.err }

func readInput(in input, stdin io.Reader) (string, error) {
	switch in.kind {
	case inputLiteral:
		return in.text, nil
	case inputStdin:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", &readError{source: "stdin", err: err}
		}
		if !utf8.Valid(b) {
			return "", &readError{source: "stdin", err: errInvalidUTF8}
		}
		return string(b), nil
	case inputFile:
		b, err := os.ReadFile(in.path)
		if err != nil {
			return "", &readError{source: in.path, err: err}
		}
		if !utf8.Valid(b) {
			return "", &readError{source: in.path, err: errInvalidUTF8}
		}
		return string(b), nil
	}

	return "", fmt.Errorf("no text to read for %v input", in.kind)
}
