package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/componentdocs/internal/apidoc"
	"git.home.luguber.info/inful/componentdocs/internal/site"
)

// PropsCmd implements the 'props' command.
type PropsCmd struct {
	Component string `arg:"" optional:"" help:"Component file path or display name." default:"Spinner"`
	List      bool   `short:"l" help:"List the components in the metadata instead."`
}

func (p *PropsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}
	store, err := site.LoadMetadata(cfg)
	if err != nil {
		return err
	}

	if p.List {
		for _, path := range store.Paths() {
			fmt.Println(path)
		}
		return nil
	}

	path := resolveComponentPath(p.Component, store.Paths())
	meta, err := store.Component(path)
	if err != nil {
		return err
	}
	ref := apidoc.New(meta, "")
	fmt.Printf("Keyword arguments for %s\n\n", ref.Name)
	fmt.Print(ref.Markdown())
	return nil
}

// resolveComponentPath maps a display name such as "Spinner" to the metadata
// path whose file name matches it. Anything else is returned unchanged.
func resolveComponentPath(name string, paths []string) string {
	if strings.Contains(name, "/") {
		return name
	}
	for _, p := range paths {
		base := p[strings.LastIndex(p, "/")+1:]
		if strings.TrimSuffix(base, ".js") == name {
			return p
		}
	}
	return name
}
