// Package site wires configuration, example sources, component metadata and
// the renderer into the documentation page served or written by the CLI.
package site

import (
	"io"
	"log/slog"
	"sync/atomic"

	"git.home.luguber.info/inful/componentdocs/internal/app"
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/config"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/highlight"
	"git.home.luguber.info/inful/componentdocs/internal/logfields"
	"git.home.luguber.info/inful/componentdocs/internal/markdown"
	"git.home.luguber.info/inful/componentdocs/internal/metadata"
	"git.home.luguber.info/inful/componentdocs/internal/pages/spinner"
	"git.home.luguber.info/inful/componentdocs/internal/render"
)

// Site holds everything needed to assemble and render the page.
// The metadata store may be swapped by Reload while pages are rendered.
type Site struct {
	cfg      *config.Config
	sources  *spinner.Sources
	meta     atomic.Pointer[metadata.Store]
	renderer *render.Renderer
}

// Option customizes a Site.
type Option func(*Site)

// WithSources replaces the embedded example sources.
func WithSources(src *spinner.Sources) Option {
	return func(s *Site) { s.sources = src }
}

// New loads sources and metadata for cfg. Any load failure is returned
// unchanged and nothing is served.
func New(cfg *config.Config, opts ...Option) (*Site, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Site{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.sources == nil {
		src, err := spinner.DefaultSources()
		if err != nil {
			return nil, err
		}
		s.sources = src
	}

	store, err := loadPageMetadata(cfg)
	if err != nil {
		return nil, err
	}
	s.meta.Store(store)

	s.renderer = render.New(
		markdown.NewConverter(),
		highlight.New(highlight.Options{Style: cfg.Highlight.Style, LineNumbers: cfg.Highlight.LineNumbers}),
	)
	return s, nil
}

// LoadMetadata reads the configured metadata file, or the bundled metadata
// when none is configured.
func LoadMetadata(cfg *config.Config) (*metadata.Store, error) {
	if cfg.Metadata.Path == "" {
		return metadata.Default()
	}
	return metadata.Load(cfg.Metadata.Path)
}

// Metadata returns the current metadata store.
func (s *Site) Metadata() *metadata.Store { return s.meta.Load() }

// MetadataPath is the watched metadata file, or "" for the bundled metadata.
func (s *Site) MetadataPath() string { return s.cfg.Metadata.Path }

// loadPageMetadata loads the metadata and checks that it documents the
// component the page is about.
func loadPageMetadata(cfg *config.Config) (*metadata.Store, error) {
	store, err := LoadMetadata(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := store.Component(spinner.MetadataPath); err != nil {
		return nil, err
	}
	return store, nil
}

// Reload re-reads the metadata file and swaps it in. On failure, including a
// file that no longer documents the page's component, the previous store stays
// active.
func (s *Site) Reload() error {
	store, err := loadPageMetadata(s.cfg)
	if err != nil {
		return err
	}
	s.meta.Store(store)
	slog.Info("Component metadata reloaded", logfields.Path(s.cfg.Metadata.Path), slog.Int("components", len(store.Paths())))
	return nil
}

// Content assembles the page nodes against a.
func (s *Site) Content(a *app.App) ([]component.Node, error) {
	return spinner.GetContent(a, s.sources, s.Metadata())
}

// Render writes the complete page. interactive adds the callback client
// script, which only works when a server answers the callback endpoints.
func (s *Site) Render(w io.Writer, a *app.App, interactive bool) error {
	nodes, err := s.Content(a)
	if err != nil {
		return err
	}
	err = s.renderer.RenderPage(w, render.Page{
		Title:       s.cfg.Site.Title,
		Stylesheet:  s.cfg.Site.Stylesheet,
		Interactive: interactive,
		Nodes:       nodes,
	})
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			return err
		}
		return errors.WrapError(err, errors.CategoryRender, "failed to render page").
			WithContext("page", spinner.Name).
			Build()
	}
	slog.Debug("Rendered page", logfields.Page(spinner.Name), logfields.Nodes(len(nodes)), logfields.AppID(a.ID()))
	return nil
}
