package app

// Config holds everything an App needs for one generation run.
type Config struct {
	// BuildsPath optionally points at a .hcl file or a directory of build
	// definitions. Empty means the built-in build set.
	BuildsPath string

	// Ref is the source-control reference that triggered the run. Empty is
	// valid: the run then has neither branch nor tag.
	Ref string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the configuration and returns it. Every field has a
// safe zero value, so there is currently nothing to reject; the constructor
// exists so callers go through one place when validations are added.
func NewConfig(cfg Config) (*Config, error) {
	return &cfg, nil
}
