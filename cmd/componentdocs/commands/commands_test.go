package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/componentdocs/internal/app"
	"git.home.luguber.info/inful/componentdocs/internal/config"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/markdown"
	"git.home.luguber.info/inful/componentdocs/internal/site"
)

// captureStdout runs fn with os.Stdout redirected and returns what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()
	fn()
	require.NoError(t, w.Close())
	return <-done
}

func parse(t *testing.T, args ...string) (*kong.Context, *CLI) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, kong.Bind(&Global{}), kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx, cli
}

func TestParse_Commands(t *testing.T) {
	ctx, cli := parse(t, "render", "-o", "out.html")
	require.Equal(t, "render", ctx.Command())
	require.Equal(t, "out.html", cli.Render.Output)
	require.Equal(t, defaultConfigPath, cli.Config)
	require.Empty(t, cli.Render.Examples)

	ctx, cli = parse(t, "props")
	require.Equal(t, "props", ctx.Command())
	require.Equal(t, "Spinner", cli.Props.Component)

	ctx, cli = parse(t, "-c", "custom.yaml", "preview", "--addr", "127.0.0.1:9000", "--watch")
	require.Equal(t, "preview", ctx.Command())
	require.Equal(t, "custom.yaml", cli.Config)
	require.Equal(t, "127.0.0.1:9000", cli.Preview.Addr)
	require.True(t, cli.Preview.Watch)
}

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(defaultConfigPath)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	_, err = LoadConfig("explicit.yaml")
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestResolveOutputPath(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, filepath.Join("site", "spinner.html"), ResolveOutputPath("", cfg))
	require.Equal(t, "x.html", ResolveOutputPath("x.html", cfg))
}

func TestRenderCmd_WritesFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "spinner.html")
	cmd := &RenderCmd{Output: out}

	printed := captureStdout(t, func() {
		require.NoError(t, cmd.Run(&Global{}, &CLI{Config: defaultConfigPath}))
	})
	require.Equal(t, out+"\n", printed)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, "Keyword arguments for Spinner")
	require.NotContains(t, html, "_dash-update-component")
}

func TestRenderCmd_UsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "componentdocs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site:\n  title: Custom title\noutput:\n  directory: "+filepath.Join(dir, "out")+"\n"), 0o600))

	captureStdout(t, func() {
		require.NoError(t, (&RenderCmd{}).Run(&Global{}, &CLI{Config: cfgPath}))
	})
	data, err := os.ReadFile(filepath.Join(dir, "out", "spinner.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), "<title>Custom title</title>")
}

func copyExamples(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"simple", "loading", "grow", "size", "button"} {
		data, err := os.ReadFile(filepath.Join("..", "..", "..", "internal", "pages", "spinner", name+".go"))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".go"), data, 0o600))
	}
	return dir
}

func TestRenderCmd_ExamplesDirectory(t *testing.T) {
	examples := copyExamples(t)
	simple, err := os.ReadFile(filepath.Join(examples, "simple.go"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(examples, "simple.go"),
		append(simple, []byte("\n// edited example marker\n")...), 0o600))

	out := filepath.Join(t.TempDir(), "spinner.html")
	captureStdout(t, func() {
		require.NoError(t, (&RenderCmd{Output: out, Examples: examples}).Run(&Global{}, &CLI{Config: defaultConfigPath}))
	})
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "edited example marker")
}

func TestNewSite_IncompleteExamplesDirectory(t *testing.T) {
	examples := copyExamples(t)
	require.NoError(t, os.Remove(filepath.Join(examples, "size.go")))

	_, err := NewSite(config.Default(), examples)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	st, err := NewSite(config.Default(), "")
	require.NoError(t, err)
	require.NotNil(t, st)
}

func TestPropsCmd(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, (&PropsCmd{Component: "Spinner"}).Run(&Global{}, &CLI{Config: defaultConfigPath}))
	})
	require.True(t, strings.HasPrefix(out, "Keyword arguments for Spinner\n"))
	require.Contains(t, out, "- **color** (")
	require.NotContains(t, out, "setProps")

	out = captureStdout(t, func() {
		require.NoError(t, (&PropsCmd{List: true}).Run(&Global{}, &CLI{Config: defaultConfigPath}))
	})
	require.Equal(t, "src/components/Button.js\nsrc/components/Spinner.js\n", out)
}

func TestPropsCmd_UnknownComponent(t *testing.T) {
	err := (&PropsCmd{Component: "Modal"}).Run(&Global{}, &CLI{Config: defaultConfigPath})
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestResolveComponentPath(t *testing.T) {
	paths := []string{"src/components/Button.js", "src/components/Spinner.js"}
	require.Equal(t, "src/components/Spinner.js", resolveComponentPath("Spinner", paths))
	require.Equal(t, "src/components/Button.js", resolveComponentPath("src/components/Button.js", paths))
	require.Equal(t, "Modal", resolveComponentPath("Modal", paths))
}

func TestPageLinks(t *testing.T) {
	st, err := site.New(config.Default())
	require.NoError(t, err)
	nodes, err := st.Content(app.New("test"))
	require.NoError(t, err)

	links := PageLinks(nodes)
	require.Contains(t, links, markdown.Link{
		Kind:        markdown.LinkKindInline,
		Destination: "https://dash.plot.ly/dash-core-components/loading",
	})

	seen := map[string]bool{}
	for _, l := range links {
		require.False(t, seen[l.Destination], "duplicate %s", l.Destination)
		seen[l.Destination] = true
	}
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()
	captureStdout(t, func() {
		require.NoError(t, (&InitCmd{Output: dir}).Run(&Global{}, &CLI{}))
	})
	_, err := os.Stat(filepath.Join(dir, defaultConfigPath))
	require.NoError(t, err)

	captureStdout(t, func() {
		err = (&InitCmd{Output: dir}).Run(&Global{}, &CLI{})
	})
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}
