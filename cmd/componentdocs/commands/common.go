package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/componentdocs/internal/config"
	"git.home.luguber.info/inful/componentdocs/internal/logfields"
	"git.home.luguber.info/inful/componentdocs/internal/pages/spinner"
	"git.home.luguber.info/inful/componentdocs/internal/site"
)

const defaultConfigPath = "componentdocs.yaml"

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"componentdocs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render  RenderCmd  `cmd:"" help:"Render the documentation page to an HTML file"`
	Preview PreviewCmd `cmd:"" help:"Serve the documentation page with live examples"`
	Props   PropsCmd   `cmd:"" help:"Print the keyword-argument reference for a component"`
	Links   LinksCmd   `cmd:"" help:"List the links in the page's markdown"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig reads the configuration file. A missing file at the default
// path falls back to defaults; an explicitly named file must exist.
func LoadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			slog.Debug("No configuration file, using defaults", logfields.Path(path))
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// ResolveOutputPath determines the rendered file path.
// Priority: CLI flag > config output directory.
func ResolveOutputPath(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	return filepath.Join(cfg.Output.Directory, spinner.Name+".html")
}

// NewSite builds the site for cfg. A non-empty examplesDir replaces the
// embedded example sources with the files found there.
func NewSite(cfg *config.Config, examplesDir string) (*site.Site, error) {
	var opts []site.Option
	if examplesDir != "" {
		src, err := spinner.LoadSources(os.DirFS(examplesDir))
		if err != nil {
			return nil, err
		}
		slog.Debug("Using example sources from directory", logfields.Path(examplesDir))
		opts = append(opts, site.WithSources(src))
	}
	return site.New(cfg, opts...)
}
