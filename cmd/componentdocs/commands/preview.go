package commands

import (
	"context"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/componentdocs/internal/metrics"
	"git.home.luguber.info/inful/componentdocs/internal/preview"
)

// PreviewCmd starts a local server for the page and its callbacks.
type PreviewCmd struct {
	Addr      string `name:"addr" help:"Listen address (overrides preview.addr)."`
	Watch     bool   `name:"watch" help:"Reload component metadata when the file changes (overrides preview.watch)."`
	NoMetrics bool   `name:"no-metrics" help:"Disable the /metrics endpoint."`
	Examples  string `name:"examples" type:"existingdir" help:"Directory of example sources to show instead of the embedded ones."`
}

func (p *PreviewCmd) Run(g *Global, root *CLI) error {
	// Setup signal-based context for graceful shutdown
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}
	if p.Addr != "" {
		cfg.Preview.Addr = p.Addr
	}
	if p.Watch {
		cfg.Preview.Watch = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := NewSite(cfg, p.Examples)
	if err != nil {
		return err
	}

	opts := []preview.ServerOption{preview.WithLogger(g.Logger)}
	if !p.NoMetrics {
		reg := prom.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, preview.WithRegistry(reg), preview.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	}

	srv, err := preview.NewServer(st, opts...)
	if err != nil {
		return err
	}
	return preview.Run(sigctx, srv, cfg.Preview.Addr, cfg.Preview.Watch)
}
