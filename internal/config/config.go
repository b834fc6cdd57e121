package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	pxfuri "github.com/machinafabric/pxf-uri-go"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type ChecksConfig struct {
	NoDuplicates bool `yaml:"no_duplicates"`
	// CoreOptions is the required set when no PROFILE is given. An explicit
	// empty list disables the check.
	CoreOptions []string `yaml:"core_options"`
}

type Config struct {
	Warn      bool         `yaml:"warn"`
	Verbosity int          `yaml:"verbosity"`
	Output    string       `yaml:"output"`
	Checks    ChecksConfig `yaml:"checks"`
}

func Default() *Config {
	return &Config{
		Warn:   true,
		Output: OutputText,
		Checks: ChecksConfig{
			NoDuplicates: true,
			CoreOptions:  append([]string(nil), pxfuri.CoreOptions...),
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.normalize(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = OutputText
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	names := make([]string, 0, len(c.Checks.CoreOptions))
	for _, name := range c.Checks.CoreOptions {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			return errors.New("checks.core_options: empty option name")
		}
		names = append(names, name)
	}
	c.Checks.CoreOptions = names
	return nil
}

func ValidateOutput(output string) error {
	switch output {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return errors.Errorf("unknown output format: %s", output)
}

// WarnPolicy maps the warn flag onto the parser policy.
func (c *Config) WarnPolicy() pxfuri.WarnPolicy {
	if c.Warn {
		return pxfuri.Warn
	}
	return pxfuri.DontWarn
}
