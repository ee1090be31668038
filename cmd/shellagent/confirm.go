package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalConfirmer prompts for explicit approval of each proposed command.
// It shares the REPL's stdin reader so prompts and turns never race for input.
type terminalConfirmer struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

func (c *terminalConfirmer) Confirm(command string) (bool, error) {
	fmt.Fprintln(c.out, c.styles.warn.Render("[?] Agent requests execution: "+command))

	for {
		fmt.Fprint(c.out, c.styles.prompt.Render("[y/n] > "))

		line, err := c.in.ReadString('\n')
		if err != nil {
			return false, err
		}

		// Anything other than an explicit yes is a refusal or a retry.
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}
