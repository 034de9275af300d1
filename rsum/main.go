package main

import (
	"fmt"
	"io"
	"os"

	ansicolor "github.com/fatih/color"
)

func main() {
	if err := realMain(
		os.Args,
		os.Stdin,
		os.Stdout,
	); err != nil {
		colorError.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain(
	args []string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	in, err := resolveInput(args)
	if err != nil {
		return err
	}

	if in.kind == inputHelp {
		return printHelp(stdout)
	}

	text, err := readInput(in, stdin)
	if err != nil {
		return err
	}

	total, err := parseAndSum(text)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, total)
	return err
}

var colorError = ansicolor.New(ansicolor.FgRed)
