// File path: internal/kb/registry.go
package kb

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GreetingEntryID names the designated greeting entry. The scorer treats it
// specially: it is forced to the sentinel score for simple greeting queries
// and excluded from ranking for everything else.
const GreetingEntryID = "greetings"

//go:embed knowledge.yaml
var embeddedKnowledge []byte

type entryConfig struct {
	ID       string   `yaml:"id"`
	Category string   `yaml:"category"`
	Context  string   `yaml:"context"`
	Priority int      `yaml:"priority"`
	Keywords []string `yaml:"keywords"`
	Content  string   `yaml:"content"`
}

type knowledgeConfig struct {
	Entries []entryConfig `yaml:"entries"`
}

// Registry holds the immutable knowledge base. It is built once at process
// start and shared read-only across concurrent searches.
type Registry struct {
	entries []Entry
}

// Load parses the embedded knowledge base configuration.
func Load() (*Registry, error) {
	return parse(embeddedKnowledge)
}

// LoadFile parses a knowledge base configuration from disk, overriding the
// embedded defaults.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Registry, error) {
	var cfg knowledgeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse knowledge config: %w", err)
	}
	entries := make([]Entry, 0, len(cfg.Entries))
	for _, raw := range cfg.Entries {
		entry, err := buildEntry(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return NewRegistry(entries)
}

func buildEntry(raw entryConfig) (Entry, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return Entry{}, fmt.Errorf("knowledge entry missing id")
	}
	category, err := ParseCategory(raw.Category)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", id, err)
	}
	if raw.Priority <= 0 {
		return Entry{}, fmt.Errorf("entry %q: priority must be positive, got %d", id, raw.Priority)
	}
	keywords := make([]string, 0, len(raw.Keywords))
	for _, kw := range raw.Keywords {
		trimmed := strings.TrimSpace(kw)
		if trimmed == "" {
			continue
		}
		keywords = append(keywords, trimmed)
	}
	return Entry{
		ID:       id,
		Category: category,
		Content:  raw.Content,
		Keywords: keywords,
		Context:  strings.TrimSpace(raw.Context),
		Priority: raw.Priority,
	}, nil
}

// NewRegistry validates entries and builds a registry. Definition order is
// preserved; ties in search scores keep this order.
func NewRegistry(entries []Entry) (*Registry, error) {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate knowledge entry id %q", entry.ID)
		}
		seen[entry.ID] = struct{}{}
	}
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Registry{entries: copied}, nil
}

// Entries returns a copy of the registered entries in definition order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Greeting returns the designated greeting entry, if one is defined.
func (r *Registry) Greeting() (Entry, bool) {
	for _, entry := range r.entries {
		if entry.ID == GreetingEntryID {
			return entry, true
		}
	}
	return Entry{}, false
}

// Len reports the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
