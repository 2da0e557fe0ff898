package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"slices"
	"time"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/model"
	"stacklaunch/pkg/system"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when --config is not given. It may be absent.
const DefaultConfigFile = "./launcher.yaml"

type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Poll    PollSettings  `yaml:"poll"`
	Compose ComposeConfig `yaml:"compose"`
	Stack   StackConfig   `yaml:"stack"`
}

type RuntimeConfig struct {
	Path  string   `yaml:"path"`
	Probe []string `yaml:"probe"`
}

type PollSettings struct {
	Interval time.Duration `yaml:"interval"`
	Attempts int           `yaml:"attempts"`
}

type ComposeConfig struct {
	Command []string `yaml:"command"`
	// Probe defaults to Command followed by "version".
	Probe      []string `yaml:"probe"`
	File       string   `yaml:"file"`
	ProjectDir string   `yaml:"project_dir"`
}

// VersionProbe asks the configured compose command for its version.
func (c ComposeConfig) VersionProbe() []string {
	return append(slices.Clone(c.Command), "version")
}

type StackConfig struct {
	Name      string     `yaml:"name"`
	Services  []string   `yaml:"services"`
	Endpoints []Endpoint `yaml:"endpoints"`
	Notice    string     `yaml:"notice"`
}

type Endpoint struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// envOverrides lists the settings that can be changed from the environment.
// Unset variables leave the pointers nil.
type envOverrides struct {
	RuntimePath  *string        `env:"LAUNCHER_RUNTIME_PATH"`
	PollInterval *time.Duration `env:"LAUNCHER_POLL_INTERVAL"`
	PollAttempts *int           `env:"LAUNCHER_POLL_ATTEMPTS"`
	ComposeFile  *string        `env:"LAUNCHER_COMPOSE_FILE"`
	ProjectDir   *string        `env:"LAUNCHER_PROJECT_DIR"`
}

func (o envOverrides) apply(cfg *Config) {
	if o.RuntimePath != nil {
		cfg.Runtime.Path = *o.RuntimePath
	}
	if o.PollInterval != nil {
		cfg.Poll.Interval = *o.PollInterval
	}
	if o.PollAttempts != nil {
		cfg.Poll.Attempts = *o.PollAttempts
	}
	if o.ComposeFile != nil {
		cfg.Compose.File = *o.ComposeFile
	}
	if o.ProjectDir != nil {
		cfg.Compose.ProjectDir = *o.ProjectDir
	}
}

// Default returns the built-in configuration for the sentiment analysis stack.
func Default() Config {
	poll := model.DefaultPollConfig()
	compose := ComposeConfig{Command: []string{"docker-compose"}}
	compose.Probe = compose.VersionProbe()
	return Config{
		Runtime: RuntimeConfig{
			Path:  system.DefaultRuntimePath(),
			Probe: []string{"docker", "version"},
		},
		Poll: PollSettings{
			Interval: poll.Interval,
			Attempts: poll.MaxAttempts,
		},
		Compose: compose,
		Stack: StackConfig{
			Name: "Sentiment Analysis App",
			Services: []string{
				"Start Redis database",
				"Build and start Backend API (port 8000)",
				"Build and start Frontend (port 3000)",
			},
			Endpoints: []Endpoint{
				{Name: "Frontend", URL: "http://localhost:3000"},
				{Name: "Backend API", URL: "http://localhost:8000"},
				{Name: "API Docs", URL: "http://localhost:8000/docs"},
			},
			Notice: "First startup may take 2-3 minutes to download ML models (~1GB)",
		},
	}
}

// LoadConfig layers the file and the process environment over the defaults.
// The default file may be missing; an explicitly named one may not.
func LoadConfig(filename string, logger log.Logger) (*Config, error) {
	return Load(filename, nil, logger)
}

// Load is LoadConfig with an explicit environment. A nil environ means os.Environ.
func Load(filename string, environ map[string]string, logger log.Logger) (*Config, error) {
	cfg := Default()
	// re-derived below unless the file sets it
	cfg.Compose.Probe = nil

	if err := loadConfigFile(filename, &cfg, logger); err != nil {
		return nil, err
	}

	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	overrides.apply(&cfg)
	if len(cfg.Compose.Probe) == 0 {
		cfg.Compose.Probe = cfg.Compose.VersionProbe()
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

func loadConfigFile(filename string, cfg *Config, logger log.Logger) error {
	f, err := afero.ReadFile(system.AppFs, filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && filename == DefaultConfigFile {
			logger.Debug("no config file, using defaults", "path", filename)
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(f, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	logger.Debug("loaded config", "path", filename)
	return nil
}

// PollConfig returns the immutable polling policy.
func (c *Config) PollConfig() model.PollConfig {
	return model.PollConfig{Interval: c.Poll.Interval, MaxAttempts: c.Poll.Attempts}
}

func (c *Config) Validate() model.ValidationErrors {
	var errs model.ValidationErrors

	if c.Runtime.Path == "" {
		errs = append(errs, model.ValidationError{Field: "runtime.path", Message: "cannot be empty"})
	}
	if len(c.Runtime.Probe) == 0 || c.Runtime.Probe[0] == "" {
		errs = append(errs, model.ValidationError{Field: "runtime.probe", Message: "cannot be empty"})
	}
	errs = append(errs, c.PollConfig().Validate()...)
	if len(c.Compose.Command) == 0 || c.Compose.Command[0] == "" {
		errs = append(errs, model.ValidationError{Field: "compose.command", Message: "cannot be empty"})
	}
	if len(c.Compose.Probe) == 0 || c.Compose.Probe[0] == "" {
		errs = append(errs, model.ValidationError{Field: "compose.probe", Message: "cannot be empty"})
	}
	for i, ep := range c.Stack.Endpoints {
		field := fmt.Sprintf("stack.endpoints[%d]", i)
		if ep.Name == "" {
			errs = append(errs, model.ValidationError{Field: field + ".name", Message: "cannot be empty"})
		}
		if u, err := url.Parse(ep.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, model.ValidationError{Field: field + ".url", Message: fmt.Sprintf("invalid URL %q", ep.URL)})
		}
	}

	return errs
}
