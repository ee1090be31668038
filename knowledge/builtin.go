package knowledge

// BuiltinEntries returns the knowledge entries compiled into the binary.
// They are always registered ahead of any directory-loaded documents.
func BuiltinEntries() []Entry {
	return []Entry{bashScripting}
}

var bashScripting = Entry{
	Name: "bash-scripting",
	Triggers: []string{
		"bash", "shell", "script", "loop", "variable",
		"pipe", "sed", "awk", "grep", "automation",
	},
	Body: `### SPECIALIZED CONTEXT: PROFESSIONAL BASH SCRIPTING ###

- Strict mode: every suggested script must start with ` + "`set -euo pipefail`" + ` so it fails immediately on errors or undefined variables.
- Portability: use ` + "`#!/usr/bin/env bash`" + ` as the shebang so the script finds the bash binary on the user's PATH.
- Syntax: always use ` + "`[[ ]]`" + ` for tests instead of ` + "`[ ]`" + `; prefer ` + "`$(...)`" + ` over backticks for command substitution; quote all variables (e.g. ` + "`\"$VAR\"`" + `) to prevent word splitting and globbing.
- Structure: group logic into functions and declare function-scoped variables with ` + "`local`" + ` to avoid namespace pollution.
- Performance: for large file processing, prefer awk or sed over pure bash loops.`,
}
