// Package knowledge implements keyword-triggered context disclosure: a
// registry of knowledge entries loaded once at startup, and a selector that
// injects matching entry bodies into the model's system instructions.
//
// Matching is deliberately lexical — a trigger keyword appearing as a
// substring of the input discloses the entry. False positives from a trigger
// word used in an unrelated sense, and false negatives from unlisted
// synonyms, are accepted behavior.
package knowledge

import (
	"fmt"
	"slices"
	"strings"
)

// Registry holds knowledge entries in load order. Immutable after
// construction, so concurrent reads need no locking.
type Registry struct {
	entries []Entry
}

// NewRegistry creates a Registry over the given entries.
func NewRegistry(entries ...Entry) *Registry {
	return &Registry{entries: slices.Clone(entries)}
}

// Entries returns a copy of the registered entries in load order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Select returns the disclosure block for the given input: the bodies of all
// entries with at least one trigger appearing as a case-insensitive substring
// of input, concatenated in registry order under per-entry headers. Returns
// the empty string when nothing matches.
func (r *Registry) Select(input string) string {
	lowered := strings.ToLower(input)

	var b strings.Builder
	for _, entry := range r.entries {
		if !entry.matches(lowered) {
			continue
		}
		fmt.Fprintf(&b, "### KNOWLEDGE: %s ###\n%s\n\n", entry.Name, strings.TrimSpace(entry.Body))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Names returns the names of all entries whose triggers match the input, in
// registry order. Used to announce active knowledge to the user.
func (r *Registry) Names(input string) []string {
	lowered := strings.ToLower(input)

	var names []string
	for _, entry := range r.entries {
		if entry.matches(lowered) {
			names = append(names, entry.Name)
		}
	}
	return names
}
