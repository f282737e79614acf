// File path: internal/intent/intent.go
package intent

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Well-known intent names. The table is configuration-driven, but the
// composer keys canned behavior off these.
const (
	Greeting       = "greeting"
	ProjectInfo    = "project_info"
	ThanksPositive = "thanks_positive"
	General        = "general"
)

// Intent is one named query purpose: a set of trigger phrases, entity tags
// and a per-intent confidence seed. Static, defined once, immutable.
type Intent struct {
	Name           string
	Patterns       []string
	Entities       []string
	BaseConfidence float64
	Suggestions    []string
}

//go:embed intents.yaml
var embeddedIntents []byte

type intentConfig struct {
	Name           string   `yaml:"name"`
	BaseConfidence float64  `yaml:"base_confidence"`
	Patterns       []string `yaml:"patterns"`
	Entities       []string `yaml:"entities"`
	Suggestions    []string `yaml:"suggestions"`
}

type intentsConfig struct {
	Intents []intentConfig `yaml:"intents"`
}

// Classifier matches free-text queries against the intent table. Safe for
// concurrent use; the table is read-only after construction.
type Classifier struct {
	intents []Intent
}

// Load parses the embedded intent table.
func Load() (*Classifier, error) {
	return parseIntents(embeddedIntents)
}

// LoadFile parses an intent table from disk, overriding the embedded one.
func LoadFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent config: %w", err)
	}
	return parseIntents(data)
}

func parseIntents(data []byte) (*Classifier, error) {
	var cfg intentsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse intent config: %w", err)
	}
	intents := make([]Intent, 0, len(cfg.Intents))
	seen := make(map[string]struct{}, len(cfg.Intents))
	for _, raw := range cfg.Intents {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return nil, fmt.Errorf("intent missing name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate intent %q", name)
		}
		seen[name] = struct{}{}
		if raw.BaseConfidence < 0 || raw.BaseConfidence > 1 {
			return nil, fmt.Errorf("intent %q: base confidence %v out of range", name, raw.BaseConfidence)
		}
		intents = append(intents, Intent{
			Name:           name,
			Patterns:       lowerAll(raw.Patterns),
			Entities:       lowerAll(raw.Entities),
			BaseConfidence: raw.BaseConfidence,
			Suggestions:    append([]string(nil), raw.Suggestions...),
		})
	}
	if _, ok := seen[General]; !ok {
		return nil, fmt.Errorf("intent table must define the %q fallback", General)
	}
	return &Classifier{intents: intents}, nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.ToLower(strings.TrimSpace(value))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// Suggestions returns the canned follow-up questions for an intent, falling
// back to the general list for unknown names.
func (c *Classifier) Suggestions(name string) []string {
	var fallback []string
	for _, in := range c.intents {
		if in.Name == name {
			return append([]string(nil), in.Suggestions...)
		}
		if in.Name == General {
			fallback = in.Suggestions
		}
	}
	return append([]string(nil), fallback...)
}

// Intents returns the table in definition order.
func (c *Classifier) Intents() []Intent {
	out := make([]Intent, len(c.intents))
	copy(out, c.intents)
	return out
}
