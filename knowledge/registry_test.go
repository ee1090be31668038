package knowledge_test

import (
	"strings"
	"testing"

	"github.com/tailored-agentic-units/shellagent/knowledge"
)

func testRegistry() *knowledge.Registry {
	return knowledge.NewRegistry(
		knowledge.Entry{
			Name:     "bash-scripting",
			Triggers: []string{"bash", "loop", "pipe"},
			Body:     "always use set -euo pipefail",
		},
		knowledge.Entry{
			Name:     "networking",
			Triggers: []string{"curl", "tcp"},
			Body:     "prefer curl --fail --silent --show-error",
		},
	)
}

func TestSelect_TriggerMatch(t *testing.T) {
	reg := testRegistry()

	got := reg.Select("write me a bash loop")

	if !strings.Contains(got, "always use set -euo pipefail") {
		t.Errorf("disclosure missing matched body: %q", got)
	}
	if !strings.Contains(got, "bash-scripting") {
		t.Errorf("disclosure missing entry name header: %q", got)
	}
	if strings.Contains(got, "curl --fail") {
		t.Errorf("disclosure includes unmatched entry: %q", got)
	}
}

func TestSelect_CaseInsensitive(t *testing.T) {
	reg := testRegistry()

	got := reg.Select("Help me with BASH please")
	if !strings.Contains(got, "always use set -euo pipefail") {
		t.Errorf("matching should be case-insensitive, got %q", got)
	}
}

func TestSelect_SubstringMatch(t *testing.T) {
	reg := testRegistry()

	// "pipeline" contains the trigger "pipe" — lexical matching accepts this.
	got := reg.Select("build a pipeline")
	if !strings.Contains(got, "always use set -euo pipefail") {
		t.Errorf("substring triggers should match, got %q", got)
	}
}

func TestSelect_BodyIncludedOnce(t *testing.T) {
	reg := testRegistry()

	// Two triggers of the same entry in one input.
	got := reg.Select("a bash loop")
	if n := strings.Count(got, "always use set -euo pipefail"); n != 1 {
		t.Errorf("entry body included %d times, want 1", n)
	}
}

func TestSelect_MultipleEntries_RegistryOrder(t *testing.T) {
	reg := testRegistry()

	got := reg.Select("a bash script that uses curl")
	first := strings.Index(got, "bash-scripting")
	second := strings.Index(got, "networking")
	if first < 0 || second < 0 {
		t.Fatalf("disclosure missing entries: %q", got)
	}
	if first > second {
		t.Error("entries should be concatenated in registry order")
	}
}

func TestSelect_NoMatch(t *testing.T) {
	reg := testRegistry()

	if got := reg.Select("tell me a joke"); got != "" {
		t.Errorf("got %q, want empty disclosure", got)
	}
}

func TestNames(t *testing.T) {
	reg := testRegistry()

	got := reg.Names("a bash script that uses curl")
	want := []string{"bash-scripting", "networking"}
	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuiltinEntries_BashTriggers(t *testing.T) {
	reg := knowledge.NewRegistry(knowledge.BuiltinEntries()...)

	got := reg.Select("write me a bash loop")
	if !strings.Contains(got, "set -euo pipefail") {
		t.Errorf("built-in bash entry should match, got %q", got)
	}
}
