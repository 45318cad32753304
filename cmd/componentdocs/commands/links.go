package commands

import (
	"fmt"

	"git.home.luguber.info/inful/componentdocs/internal/app"
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/markdown"
	"git.home.luguber.info/inful/componentdocs/internal/pages/spinner"
	"git.home.luguber.info/inful/componentdocs/internal/site"
)

// LinksCmd implements the 'links' command.
type LinksCmd struct{}

func (l *LinksCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}
	st, err := site.New(cfg)
	if err != nil {
		return err
	}
	nodes, err := st.Content(app.New(spinner.Name))
	if err != nil {
		return err
	}
	for _, link := range PageLinks(nodes) {
		fmt.Printf("%s\t%s\n", link.Kind, link.Destination)
	}
	return nil
}

// PageLinks extracts the links from every markdown node, expanding composite
// nodes. Duplicate destinations are reported once.
func PageLinks(nodes []component.Node) []markdown.Link {
	var links []markdown.Link
	seen := map[string]bool{}

	var visit func(component.Node) bool
	visit = func(n component.Node) bool {
		switch v := n.(type) {
		case component.Expander:
			component.Walk(v.Expand(), visit)
			return false
		case component.Markdown:
			for _, link := range markdown.ExtractLinks([]byte(v)) {
				if seen[link.Destination] {
					continue
				}
				seen[link.Destination] = true
				links = append(links, link)
			}
		}
		return true
	}
	for _, n := range nodes {
		component.Walk(n, visit)
	}
	return links
}
