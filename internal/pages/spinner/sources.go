package spinner

import (
	"embed"
	stderrors "errors"
	"go/parser"
	"go/token"
	"io/fs"
	"strings"

	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
)

// The example files are compiled into this package and embedded verbatim, so
// the text shown next to an example is the code that built it.
//
//go:embed simple.go loading.go grow.go size.go button.go
var exampleFiles embed.FS

// Example source names.
const (
	SourceSimple  = "simple"
	SourceLoading = "loading"
	SourceGrow    = "grow"
	SourceSize    = "size"
	SourceButton  = "button"
)

// sourceNames lists every example the page needs, in page order.
var sourceNames = []string{SourceSimple, SourceLoading, SourceGrow, SourceSize, SourceButton}

// Sources is the immutable bundle of example source text.
type Sources struct {
	text map[string]string
}

// LoadSources reads every example file from fsys. Each file is named after its
// example with a .go extension and must parse as Go source.
func LoadSources(fsys fs.FS) (*Sources, error) {
	text := make(map[string]string, len(sourceNames))
	for _, name := range sourceNames {
		file := name + ".go"
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, errors.WrapError(err, errors.CategoryNotFound, "example source not found").
					Fatal().
					WithContext("file", file).
					Build()
			}
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read example source").
				Fatal().
				WithContext("file", file).
				Build()
		}
		if strings.TrimSpace(string(data)) == "" {
			return nil, errors.ValidationError("example source is empty").
				Fatal().
				WithContext("file", file).
				Build()
		}
		if _, err := parser.ParseFile(token.NewFileSet(), file, data, parser.AllErrors); err != nil {
			return nil, errors.WrapError(err, errors.CategoryValidation, "example source does not parse").
				Fatal().
				WithContext("file", file).
				Build()
		}
		text[name] = string(data)
	}
	return &Sources{text: text}, nil
}

// DefaultSources loads the examples embedded in the binary.
func DefaultSources() (*Sources, error) {
	return LoadSources(exampleFiles)
}

// Get returns the source text of the named example, or "" if unknown.
func (s *Sources) Get(name string) string {
	return s.text[name]
}

// Names lists the examples in page order.
func (s *Sources) Names() []string {
	return append([]string(nil), sourceNames...)
}
