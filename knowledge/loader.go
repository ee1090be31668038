package knowledge

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	docExtension         = ".md"
	frontMatterDelimiter = "---"
)

// ErrEmptyDocument marks a knowledge document with no body text.
var ErrEmptyDocument = errors.New("document has no body")

// docMeta is the optional YAML front-matter header of a knowledge document.
type docMeta struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
}

// LoadDir scans dir for knowledge documents and returns entries in file-name
// order. Documents may open with a YAML front-matter block delimited by ---
// lines carrying name and triggers; missing fields default from the file
// name. A malformed or empty document is skipped with a logged warning so one
// bad entry never aborts registry construction. Discovery happens at startup
// only; there is no live reload.
func LoadDir(dir string, logger *slog.Logger) ([]Entry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, docExtension) {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable knowledge document", "path", path, "error", err)
			continue
		}

		entry, err := parseDocument(name, string(data))
		if err != nil {
			logger.Warn("skipping malformed knowledge document", "path", path, "error", err)
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// parseDocument splits optional front matter from the body and applies
// file-name defaults for missing metadata.
func parseDocument(filename, content string) (Entry, error) {
	stem := strings.TrimSuffix(filename, docExtension)
	entry := Entry{
		Name:     stem,
		Triggers: []string{strings.ToLower(stem)},
	}

	body := content
	if meta, rest, ok := splitFrontMatter(content); ok {
		var m docMeta
		if err := yaml.Unmarshal([]byte(meta), &m); err != nil {
			return Entry{}, fmt.Errorf("invalid front matter: %w", err)
		}
		if m.Name != "" {
			entry.Name = m.Name
		}
		if len(m.Triggers) > 0 {
			entry.Triggers = m.Triggers
		}
		body = rest
	}

	entry.Body = strings.TrimSpace(body)
	if entry.Body == "" {
		return Entry{}, ErrEmptyDocument
	}

	return entry, nil
}

// splitFrontMatter separates a leading front-matter block from the document
// body. The block must start on the first line with the delimiter and end at
// the next delimiter line; documents without one are returned unchanged.
func splitFrontMatter(content string) (meta, body string, ok bool) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	rest, found := strings.CutPrefix(normalized, frontMatterDelimiter+"\n")
	if !found {
		return "", "", false
	}

	closer := "\n" + frontMatterDelimiter + "\n"
	if end := strings.Index(rest, closer); end >= 0 {
		return rest[:end], rest[end+len(closer):], true
	}
	if strings.HasSuffix(rest, "\n"+frontMatterDelimiter) {
		return strings.TrimSuffix(rest, "\n"+frontMatterDelimiter), "", true
	}
	return "", "", false
}
