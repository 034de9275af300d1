package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"
)

const helpText = `Sums up space and/or newline delimited numbers (both integers and decimals)
and prints the result to stdout.

Input is read from stdin when no arguments are given, from a file with -f,
or from the arguments themselves. Commas in numbers are allowed and ignored.`

// helpCommand only describes the tool; arguments are never parsed through its
// flag set.
func helpCommand() *ffcli.Command {
	fs := flag.NewFlagSet("rsum", flag.ContinueOnError)
	fs.String("f", "", "read numbers from the file at `path`")
	fs.Bool("h", false, "print this help")

	return &ffcli.Command{
		Name:       "rsum",
		ShortUsage: "rsum [-h] [-f path] [numbers...]",
		LongHelp:   helpText,
		FlagSet:    fs,
	}
}

func printHelp(w io.Writer) error {
	usage := ffcli.DefaultUsageFunc(helpCommand())
	_, err := fmt.Fprintln(w, strings.TrimRight(usage, "\n"))
	return err
}
