package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/componentdocs/internal/app"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/logfields"
	"git.home.luguber.info/inful/componentdocs/internal/pages/spinner"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output   string `short:"o" name:"output" help:"Output file, or - for stdout (defaults to <output.directory>/spinner.html)"`
	Examples string `name:"examples" type:"existingdir" help:"Directory of example sources to show instead of the embedded ones."`
}

func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}
	st, err := NewSite(cfg, r.Examples)
	if err != nil {
		return err
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := st.Render(&buf, app.New(spinner.Name), false); err != nil {
		return err
	}

	if r.Output == "-" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}

	out := ResolveOutputPath(r.Output, cfg)
	if err := writeFile(out, buf.Bytes()); err != nil {
		return err
	}
	slog.Info("Rendered page",
		logfields.Page(spinner.Name),
		logfields.Output(out),
		logfields.Duration(time.Since(start)))
	fmt.Println(out)
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write output file").
			WithContext("path", path).
			Build()
	}
	return nil
}
