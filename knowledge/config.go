package knowledge

import "log/slog"

// Config holds knowledge registry initialization parameters.
type Config struct {
	Path string `json:"path,omitempty"` // Document directory; empty loads built-ins only.
}

// DefaultConfig returns the default knowledge configuration (built-ins only).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
}

// New builds a Registry from configuration: built-in entries first, then
// documents discovered under Path.
func New(cfg *Config, logger *slog.Logger) (*Registry, error) {
	entries := BuiltinEntries()

	if cfg.Path != "" {
		loaded, err := LoadDir(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		entries = append(entries, loaded...)
	}

	return NewRegistry(entries...), nil
}
