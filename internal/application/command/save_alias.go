package command

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Alias validation errors.
var (
	ErrInvalidAliasToken  = errors.New("alias token must be non-empty without whitespace or leading slash")
	ErrInvalidAliasTarget = errors.New("alias target must be non-empty")
)

// SaveAlias writes alias → target into the aliases section of the registry
// file at path, replacing an existing alias with the same token. Other
// sections keep their comments and order. The file is created if missing.
func SaveAlias(path, alias, target string) error {
	if alias == "" || strings.HasPrefix(alias, "/") || strings.ContainsFunc(alias, isSpace) {
		return ErrInvalidAliasToken
	}
	if strings.TrimSpace(target) == "" {
		return ErrInvalidAliasTarget
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading registry: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing registry: %w", err)
		}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: registry root must be a mapping", ErrInvalidRegistry)
	}

	aliases := mappingValue(root, sectionAliases)
	if aliases == nil || isNull(aliases) {
		fresh := &yaml.Node{Kind: yaml.MappingNode}
		setMappingValue(root, sectionAliases, fresh)
		aliases = fresh
	}
	if aliases.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: aliases must be a mapping", ErrInvalidRegistry)
	}
	setMappingValue(aliases, alias, &yaml.Node{Kind: yaml.ScalarNode, Value: target})

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling registry: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(path, buf.Bytes())
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func setMappingValue(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
}

// writeAtomic writes to a temp file in the target directory, then renames it
// over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".registry.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
