package knowledge_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/shellagent/knowledge"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestLoadDir_FrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "bash_pro.md", `---
name: BashScriptMaster
triggers: [bash, shell, loop]
---
Use set -euo pipefail everywhere.
`)

	entries, err := knowledge.LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Name != "BashScriptMaster" {
		t.Errorf("got name %q, want %q", e.Name, "BashScriptMaster")
	}
	if len(e.Triggers) != 3 || e.Triggers[0] != "bash" {
		t.Errorf("got triggers %v, want [bash shell loop]", e.Triggers)
	}
	if e.Body != "Use set -euo pipefail everywhere." {
		t.Errorf("got body %q", e.Body)
	}
}

func TestLoadDir_MissingMetadataDefaults(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "Kubernetes.md", "Prefer kubectl apply over imperative edits.\n")

	entries, err := knowledge.LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Name != "Kubernetes" {
		t.Errorf("got name %q, want file stem %q", e.Name, "Kubernetes")
	}
	if len(e.Triggers) != 1 || e.Triggers[0] != "kubernetes" {
		t.Errorf("got triggers %v, want lowercased file stem", e.Triggers)
	}
}

func TestLoadDir_PartialMetadata(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "git.md", `---
triggers: [git, commit, rebase]
---
Never force-push shared branches.
`)

	entries, err := knowledge.LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Name != "git" {
		t.Errorf("got name %q, want file-stem default %q", entries[0].Name, "git")
	}
	if len(entries[0].Triggers) != 3 {
		t.Errorf("got triggers %v, want the 3 declared ones", entries[0].Triggers)
	}
}

func TestLoadDir_MalformedDocumentSkipped(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "bad.md", "---\ntriggers: [unclosed\n---\nbody\n")
	writeDoc(t, dir, "good.md", "A perfectly fine document.\n")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	entries, err := knowledge.LoadDir(dir, logger)
	if err != nil {
		t.Fatalf("LoadDir should not abort on one bad document: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (bad one skipped)", len(entries))
	}
	if entries[0].Name != "good" {
		t.Errorf("got entry %q, want %q", entries[0].Name, "good")
	}
	if !strings.Contains(buf.String(), "skipping malformed knowledge document") {
		t.Errorf("expected a warning for the malformed document, log: %s", buf.String())
	}
}

func TestLoadDir_EmptyBodySkipped(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "empty.md", "---\nname: empty\n---\n")

	entries, err := knowledge.LoadDir(dir, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestLoadDir_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "notes.txt", "not a knowledge document")
	writeDoc(t, dir, ".hidden.md", "hidden")
	writeDoc(t, dir, "real.md", "real content")

	entries, err := knowledge.LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Name != "real" {
		t.Errorf("got entry %q, want %q", entries[0].Name, "real")
	}
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, err := knowledge.LoadDir(filepath.Join(t.TempDir(), "nonexistent"), nil)
	if err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
}

func TestNew_BuiltinsOnly(t *testing.T) {
	cfg := knowledge.DefaultConfig()

	reg, err := knowledge.New(&cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(reg.Entries()) != len(knowledge.BuiltinEntries()) {
		t.Errorf("got %d entries, want built-ins only (%d)",
			len(reg.Entries()), len(knowledge.BuiltinEntries()))
	}
}

func TestNew_BuiltinsPlusDirectory(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "docker.md", "---\ntriggers: [docker, container]\n---\nPin image digests.\n")

	cfg := knowledge.Config{Path: dir}
	reg, err := knowledge.New(&cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := len(knowledge.BuiltinEntries()) + 1
	if len(reg.Entries()) != want {
		t.Errorf("got %d entries, want %d", len(reg.Entries()), want)
	}
	if got := reg.Select("run it in a docker container"); !strings.Contains(got, "Pin image digests.") {
		t.Errorf("directory entry should be selectable, got %q", got)
	}
}
