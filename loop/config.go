package loop

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/shellagent/agent"
	"github.com/tailored-agentic-units/shellagent/knowledge"
	"github.com/tailored-agentic-units/shellagent/session"
	"github.com/tailored-agentic-units/shellagent/shell"
)

// defaultMaxActions bounds the inner cycle per outer turn, so a confused
// model cannot loop indefinitely proposing commands.
const defaultMaxActions = 8

// Config holds initialization parameters for all loop subsystems.
// Each subsystem section delegates to that subsystem's config-driven
// constructor.
type Config struct {
	Agent        agent.Config            `json:"agent"`
	Agents       map[string]agent.Config `json:"agents,omitempty"`
	Backend      string                  `json:"backend,omitempty"` // Named entry in Agents to use; empty uses Agent.
	Session      session.Config          `json:"session"`
	Knowledge    knowledge.Config        `json:"knowledge"`
	Shell        shell.Config            `json:"shell"`
	MaxActions   int                     `json:"max_actions,omitempty"` // Model calls per turn; 0 means unlimited.
	SystemPrompt string                  `json:"system_prompt,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Agent:        agent.DefaultConfig(),
		Session:      session.DefaultConfig(),
		Knowledge:    knowledge.DefaultConfig(),
		Shell:        shell.DefaultConfig(),
		MaxActions:   defaultMaxActions,
		SystemPrompt: DefaultSystemPrompt,
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Agent.Merge(&source.Agent)
	c.Session.Merge(&source.Session)
	c.Knowledge.Merge(&source.Knowledge)
	c.Shell.Merge(&source.Shell)

	if source.MaxActions > 0 {
		c.MaxActions = source.MaxActions
	}
	if source.SystemPrompt != "" {
		c.SystemPrompt = source.SystemPrompt
	}
	if source.Backend != "" {
		c.Backend = source.Backend
	}
	if len(source.Agents) > 0 {
		c.Agents = source.Agents
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
