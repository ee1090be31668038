package agent

import "time"

const (
	defaultEndpoint       = "http://localhost:8080/v1/chat/completions"
	defaultTemperature    = 0.1
	defaultRequestTimeout = 120 * time.Second
)

// Config holds model backend connection parameters.
type Config struct {
	Endpoint       string   `json:"endpoint,omitempty"`        // Chat-completions URL.
	Model          string   `json:"model,omitempty"`           // Optional model name sent in the request.
	Temperature    float64  `json:"temperature,omitempty"`     // Sampling temperature.
	Stop           []string `json:"stop,omitempty"`            // Stop sequences.
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"` // Request timeout; 0 uses the default.
}

// DefaultConfig returns a Config pointed at a local chat-completions server.
func DefaultConfig() Config {
	return Config{
		Endpoint:    defaultEndpoint,
		Temperature: defaultTemperature,
		Stop:        []string{"User>", "System:"},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Endpoint != "" {
		c.Endpoint = source.Endpoint
	}
	if source.Model != "" {
		c.Model = source.Model
	}
	if source.Temperature != 0 {
		c.Temperature = source.Temperature
	}
	if len(source.Stop) > 0 {
		c.Stop = source.Stop
	}
	if source.TimeoutSeconds > 0 {
		c.TimeoutSeconds = source.TimeoutSeconds
	}
}

// Timeout returns the configured request timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultRequestTimeout
}
