package knowledge

import "strings"

// Entry is one unit of disclosable domain knowledge. Triggers are matched as
// case-insensitive substrings of user input; Body is injected into the system
// instructions when any trigger matches. Entries are immutable after load.
type Entry struct {
	Name     string
	Triggers []string
	Body     string
}

// matches reports whether any trigger appears in the already-lowercased input.
func (e Entry) matches(loweredInput string) bool {
	for _, trigger := range e.Triggers {
		if trigger == "" {
			continue
		}
		if strings.Contains(loweredInput, strings.ToLower(trigger)) {
			return true
		}
	}
	return false
}
