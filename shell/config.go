package shell

import "time"

const defaultTimeout = 30 * time.Second

// DefaultDenyList holds the catastrophic command literals blocked before the
// shell is ever invoked. Matched as plain substrings of the command string.
var DefaultDenyList = []string{
	"rm -rf /",
	":(){ :|:& };:",
}

// Config holds command executor parameters.
type Config struct {
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"` // Wall-clock bound per command; 0 uses the default.
	DenyList       []string `json:"deny_list,omitempty"`       // Blocked literals; empty uses the default list.
}

// DefaultConfig returns the default executor configuration.
func DefaultConfig() Config {
	return Config{
		TimeoutSeconds: int(defaultTimeout / time.Second),
		DenyList:       DefaultDenyList,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.TimeoutSeconds > 0 {
		c.TimeoutSeconds = source.TimeoutSeconds
	}
	if len(source.DenyList) > 0 {
		c.DenyList = source.DenyList
	}
}

func (c *Config) timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}
