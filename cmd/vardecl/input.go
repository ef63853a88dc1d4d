package main

import (
	"fmt"
	"io"
	"os"
)

const stdinName = "<stdin>"

// readStdin reads the whole declaration from standard input.
func readStdin(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return content, nil
}

// inputArg returns the single positional argument, "-" when there is none.
func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

var stdin io.Reader = os.Stdin
