package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/normalization"
)

// Config represents the application configuration.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Highlight HighlightConfig `yaml:"highlight"`
	Metadata  MetadataConfig  `yaml:"metadata"`
	Preview   PreviewConfig   `yaml:"preview"`
	Output    OutputConfig    `yaml:"output"`
}

// SiteConfig controls the generated HTML document.
type SiteConfig struct {
	Title      string `yaml:"title"`
	Stylesheet string `yaml:"stylesheet,omitempty"`
}

// HighlightConfig controls source highlighting.
type HighlightConfig struct {
	Style       string `yaml:"style,omitempty"`
	LineNumbers bool   `yaml:"line_numbers,omitempty"`
}

// MetadataConfig points at the component metadata file. Empty uses the bundled metadata.
type MetadataConfig struct {
	Path string `yaml:"path,omitempty"`
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Addr  string `yaml:"addr"`
	Watch bool   `yaml:"watch"` // Reload metadata when the file changes
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

const (
	defaultTitle      = "Spinner - component documentation"
	defaultStyle      = "github"
	defaultAddr       = "127.0.0.1:8050"
	defaultOutputDir  = "./site"
	defaultStylesheet = "https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css"
)

// highlightStyles maps style names, in any case, to chroma's registered name.
var highlightStyles = func() *normalization.Normalizer[string] {
	names := make(map[string]string)
	for _, name := range styles.Names() {
		names[name] = name
	}
	return normalization.New("highlight style", names, defaultStyle)
}()

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				WithCause(err).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}
	return Parse(data)
}

// Parse decodes configuration YAML, expanding ${VAR} references and applying defaults.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			Build()
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = defaultTitle
	}
	if c.Site.Stylesheet == "" {
		c.Site.Stylesheet = defaultStylesheet
	}
	if c.Highlight.Style == "" {
		c.Highlight.Style = defaultStyle
	}
	if c.Preview.Addr == "" {
		c.Preview.Addr = defaultAddr
	}
	if c.Output.Directory == "" {
		c.Output.Directory = defaultOutputDir
	}
	// The bundled metadata cannot change, so there is nothing to watch.
	if c.Metadata.Path == "" {
		c.Preview.Watch = false
	}
}

// Validate checks field values after defaults are applied. The highlight
// style is rewritten to the registered chroma name.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return errors.ConfigError("site.title must not be blank").Build()
	}
	style, err := highlightStyles.NormalizeWithError(c.Highlight.Style)
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return ce.WithContext("field", "highlight.style")
		}
		return err
	}
	c.Highlight.Style = style
	if !strings.Contains(c.Preview.Addr, ":") {
		return errors.ConfigError("preview.addr must be host:port").
			WithContext("addr", c.Preview.Addr).
			Build()
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		Site:      SiteConfig{Title: defaultTitle, Stylesheet: defaultStylesheet},
		Highlight: HighlightConfig{Style: defaultStyle},
		Metadata:  MetadataConfig{Path: "${COMPONENT_METADATA}"},
		Preview:   PreviewConfig{Addr: defaultAddr, Watch: true},
		Output:    OutputConfig{Directory: defaultOutputDir},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
