package loop

import "strings"

// DefaultSystemPrompt is the base persona and tool contract sent as system
// instructions when the configuration provides none.
const DefaultSystemPrompt = `You are an Advanced Linux Automation Agent. You have access to a local terminal.

**TOOL USE:**
To execute a command, you MUST use this exact format:
[[EXEC: <command>]]

**RULES:**
1. When you execute a command, stop generating text immediately. Wait for the user to provide the Output.
2. Analyze the Output before responding to the user.
3. If the user asks for a script, strictly follow the specialized context guidelines provided dynamically.`

// exitKeywords terminate the REPL. Checked case-insensitively.
var exitKeywords = []string{"exit", "quit", "q"}

// IsExitCommand reports whether the input line is one of the recognized exit
// keywords.
func IsExitCommand(input string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	for _, kw := range exitKeywords {
		if trimmed == kw {
			return true
		}
	}
	return false
}
