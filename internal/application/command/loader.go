package command

import (
	"fmt"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/log"
)

// Loader turns a registry source into a ready Parser.
type Loader struct {
	// Path of the registry file. Empty loads the built-in registry.
	Path string
	// Strict rejects collisions and dangling aliases.
	Strict bool
	// ParserOptions are applied to every parser built.
	ParserOptions []ParserOption
}

// LoadRegistry reads the registry at path, or the built-in registry when
// path is empty.
func LoadRegistry(path string) (domaincmd.Registry, error) {
	if path == "" {
		return LoadDefaultRegistry()
	}
	return LoadRegistryFile(path)
}

// Load reads, compiles and wraps the registry. Construction warnings are
// logged; in strict mode they fail the load.
func (l Loader) Load() (*Parser, error) {
	reg, err := LoadRegistry(l.Path)
	if err != nil {
		return nil, err
	}

	catalog, err := domaincmd.Compile(reg, domaincmd.Strict(l.Strict))
	if err != nil {
		return nil, fmt.Errorf("compile registry: %w", err)
	}

	for _, w := range catalog.Warnings() {
		log.Warn(log.CatRegistry, "Registry warning", "kind", w.Kind, "detail", w.String())
	}
	log.Info(log.CatRegistry, "Registry compiled",
		"path", l.source(),
		"commands", catalog.Index().Len(),
		"aliases", catalog.Aliases().Len(),
		"warnings", len(catalog.Warnings()))

	return NewParser(catalog, l.ParserOptions...), nil
}

func (l Loader) source() string {
	if l.Path == "" {
		return "built-in"
	}
	return l.Path
}
