// Package config loads the optional settings file. Both YAML and JSON
// are accepted; YAML is coerced to JSON so a single strict decoder
// (DisallowUnknownFields) validates both formats.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Workers bounds concurrent solver executions; 0 means one worker
	// per available logical processor.
	Workers int `json:"workers,omitempty"`

	// SolveTimeout is a Go duration string (e.g. "10s", "1m"). Empty or
	// "0s" disables the solver watchdog.
	SolveTimeout string `json:"solve_timeout,omitempty"`

	Logging LoggingConfig `json:"logging,omitempty"`

	// Directory overrides; defaults follow the platform conventions.
	CacheDir  string `json:"cache_dir,omitempty"`
	ConfigDir string `json:"config_dir,omitempty"`
	DataDir   string `json:"data_dir,omitempty"`
}

type LoggingConfig struct {
	Level string        `json:"level,omitempty"`
	File  LogFileConfig `json:"file,omitempty"`
}

type LogFileConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Load reads and validates the settings file. A missing file yields the
// zero config unless the path was given explicitly by the user.
func Load(path string, explicit bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	jb, _, err := coerceToJSONBytes(path, b)
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("invalid config %q: trailing data", path)
		}
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	if _, err := cfg.SolveTimeoutDuration(); err != nil {
		return nil, err
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid config %q: workers must be >= 0", path)
	}

	return &cfg, nil
}

// SolveTimeoutDuration parses the solver watchdog timeout.
func (c *Config) SolveTimeoutDuration() (time.Duration, error) {
	return parseDurationField("solve_timeout", c.SolveTimeout)
}

func parseDurationField(path, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", path)
	}
	return d, nil
}
