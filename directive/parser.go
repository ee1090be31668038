// Package directive extracts embedded action directives from model output.
// The parser abstraction keeps the marker syntax and match policy swappable
// without touching the session loop.
package directive

import (
	"regexp"
	"strings"
)

// Directive is a request by the model to execute a shell command.
type Directive struct {
	Command string
}

// Parser extracts at most one directive from a model response.
type Parser interface {
	// Parse returns the directive and true when the text contains a
	// well-formed action marker, or the zero Directive and false otherwise.
	Parse(text string) (Directive, bool)
}

// execPattern matches [[EXEC: <command>]]. The payload capture is lazy so
// the first closing marker terminates the match; (?s) lets commands span
// multiple lines.
var execPattern = regexp.MustCompile(`(?s)\[\[EXEC:\s*(.*?)\s*\]\]`)

type execParser struct{}

// NewExecParser returns the default parser for the [[EXEC: ...]] marker.
// When a response contains several well-formed markers, only the first is
// honored. Unterminated or absent markers yield no directive, and the text
// is treated as a final answer.
func NewExecParser() Parser {
	return execParser{}
}

func (execParser) Parse(text string) (Directive, bool) {
	m := execPattern.FindStringSubmatch(text)
	if m == nil {
		return Directive{}, false
	}

	command := strings.TrimSpace(m[1])
	if command == "" {
		return Directive{}, false
	}

	return Directive{Command: command}, true
}
