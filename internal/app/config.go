package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ModelPath points at a .hcl model description file or a directory of
	// description files.
	ModelPath string
	// TargetPath optionally points at a separate target description; the
	// model path may also carry the target block.
	TargetPath string

	LogFormat string
	LogLevel  string

	// AdvancePerRound controls the scheduler's clock policy.
	AdvancePerRound bool
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
