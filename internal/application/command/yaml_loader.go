package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/log"
	"github.com/vltrn/slashroute/internal/registrydata"
)

// ErrInvalidRegistry is wrapped by every shape error in a registry document.
var ErrInvalidRegistry = errors.New("invalid registry")

// Top-level registry sections.
const (
	sectionTiers     = "tiers"
	sectionWorkflows = "workflows"
	sectionNvidia    = "nvidia"
	sectionLLM       = "llm"
	sectionOracle    = "oracle"
	sectionAliases   = "aliases"
)

// commandDef is the YAML shape of a direct command. SubAgents may be authored
// as a list of names or as a count.
type commandDef struct {
	Agent       string    `yaml:"agent"`
	Description string    `yaml:"description"`
	Domain      string    `yaml:"domain"`
	SubAgents   yaml.Node `yaml:"subAgents"`
}

// ParseRegistry decodes a registry document. Mapping order is preserved.
// Missing sections are empty; an empty document is an empty registry.
func ParseRegistry(data []byte) (domaincmd.Registry, error) {
	var reg domaincmd.Registry

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return reg, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return reg, nil
	}

	pairs, err := mappingPairs(doc.Content[0], "registry")
	if err != nil {
		return reg, err
	}

	for _, p := range pairs {
		key, value := p[0].Value, p[1]
		switch key {
		case sectionTiers:
			reg.Tiers, err = decodeTiers(value)
		case sectionWorkflows:
			reg.Workflows, err = decodeWorkflows(value)
		case sectionNvidia:
			reg.Backends, err = decodeEntries(value, key)
		case sectionLLM:
			reg.Providers, err = decodeEntries(value, key)
		case sectionOracle:
			reg.Validators, err = decodeEntries(value, key)
		case sectionAliases:
			reg.Aliases, err = decodeAliases(value)
		default:
			log.Debug(log.CatRegistry, "Ignoring unknown registry section", "section", key, "line", p[0].Line)
		}
		if err != nil {
			return domaincmd.Registry{}, err
		}
	}

	return reg, nil
}

// LoadRegistryFile reads and decodes the registry document at path.
func LoadRegistryFile(path string) (domaincmd.Registry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return domaincmd.Registry{}, fmt.Errorf("read registry %s: %w", path, err)
	}
	reg, err := ParseRegistry(data)
	if err != nil {
		return domaincmd.Registry{}, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return reg, nil
}

// LoadDefaultRegistry decodes the embedded built-in registry.
func LoadDefaultRegistry() (domaincmd.Registry, error) {
	reg, err := ParseRegistry(registrydata.Default())
	if err != nil {
		return domaincmd.Registry{}, fmt.Errorf("parse built-in %s: %w", registrydata.FileName, err)
	}
	return reg, nil
}

func decodeTiers(n *yaml.Node) ([]domaincmd.TierSection, error) {
	pairs, err := mappingPairs(n, sectionTiers)
	if err != nil {
		return nil, err
	}

	tiers := make([]domaincmd.TierSection, 0, len(pairs))
	for _, p := range pairs {
		tierKey := p[0].Value
		fields, err := mappingPairs(p[1], "tier "+tierKey)
		if err != nil {
			return nil, err
		}

		section := domaincmd.TierSection{Key: tierKey}
		for _, f := range fields {
			switch f[0].Value {
			case "clearance":
				var clearance string
				if err := f[1].Decode(&clearance); err != nil {
					return nil, shapeError(f[1], "tier %s clearance must be a string", tierKey)
				}
				section.Clearance = domaincmd.Tier(clearance)
			case "commands":
				section.Commands, err = decodeCommands(f[1], tierKey)
				if err != nil {
					return nil, err
				}
			}
		}
		tiers = append(tiers, section)
	}
	return tiers, nil
}

func decodeCommands(n *yaml.Node, tierKey string) ([]domaincmd.CommandSpec, error) {
	pairs, err := mappingPairs(n, "tier "+tierKey+" commands")
	if err != nil {
		return nil, err
	}

	specs := make([]domaincmd.CommandSpec, 0, len(pairs))
	for _, p := range pairs {
		name := p[0].Value
		var def commandDef
		if resolve(p[1]).Kind != yaml.MappingNode {
			return nil, shapeError(p[1], "command %s must be a mapping", name)
		}
		if err := p[1].Decode(&def); err != nil {
			return nil, shapeError(p[1], "command %s: %v", name, err)
		}

		spec := domaincmd.CommandSpec{
			Name:        name,
			Agent:       def.Agent,
			Description: def.Description,
			Domain:      def.Domain,
		}
		if err := decodeSubAgents(&def.SubAgents, &spec); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func decodeSubAgents(n *yaml.Node, spec *domaincmd.CommandSpec) error {
	n = resolve(n)
	switch n.Kind {
	case 0:
		return nil
	case yaml.SequenceNode:
		if err := n.Decode(&spec.SubAgents); err != nil {
			return shapeError(n, "command %s subAgents must be a list of names", spec.Name)
		}
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
		if err := n.Decode(&spec.SubAgentTotal); err != nil || spec.SubAgentTotal < 0 {
			return shapeError(n, "command %s subAgents must be a list or a non-negative number", spec.Name)
		}
	default:
		return shapeError(n, "command %s subAgents must be a list or a number", spec.Name)
	}
	return nil
}

func decodeWorkflows(n *yaml.Node) ([]domaincmd.WorkflowCategory, error) {
	pairs, err := mappingPairs(n, sectionWorkflows)
	if err != nil {
		return nil, err
	}

	categories := make([]domaincmd.WorkflowCategory, 0, len(pairs))
	for _, p := range pairs {
		category := domaincmd.WorkflowCategory{Name: p[0].Value}
		if v := resolve(p[1]); v.Kind != yaml.SequenceNode && !isNull(v) {
			return nil, shapeError(v, "workflow category %s must be a list", category.Name)
		}
		if err := p[1].Decode(&category.Workflows); err != nil {
			return nil, shapeError(p[1], "workflow category %s must be a list of names", category.Name)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func decodeEntries(n *yaml.Node, section string) ([]domaincmd.Entry, error) {
	pairs, err := mappingPairs(n, section)
	if err != nil {
		return nil, err
	}

	entries := make([]domaincmd.Entry, 0, len(pairs))
	for _, p := range pairs {
		entry := domaincmd.Entry{Name: p[0].Value}
		v := resolve(p[1])
		if v.Kind != yaml.ScalarNode {
			return nil, shapeError(v, "%s entry %s must be a description string", section, entry.Name)
		}
		if !isNull(v) {
			entry.Description = v.Value
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeAliases(n *yaml.Node) ([]domaincmd.Alias, error) {
	pairs, err := mappingPairs(n, sectionAliases)
	if err != nil {
		return nil, err
	}

	aliases := make([]domaincmd.Alias, 0, len(pairs))
	for _, p := range pairs {
		v := resolve(p[1])
		if v.Kind != yaml.ScalarNode || isNull(v) {
			return nil, shapeError(v, "alias %s must target a command key", p[0].Value)
		}
		aliases = append(aliases, domaincmd.Alias{Token: p[0].Value, Target: v.Value})
	}
	return aliases, nil
}

// mappingPairs returns the key/value pairs of a mapping node in document
// order. A null or absent node is an empty mapping.
func mappingPairs(n *yaml.Node, what string) ([][2]*yaml.Node, error) {
	n = resolve(n)
	if n == nil || n.Kind == 0 || isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, shapeError(n, "%s must be a mapping", what)
	}

	pairs := make([][2]*yaml.Node, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolve(n.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, shapeError(key, "%s keys must be strings", what)
		}
		pairs = append(pairs, [2]*yaml.Node{key, n.Content[i+1]})
	}
	return pairs, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func shapeError(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidRegistry, n.Line, fmt.Sprintf(format, args...))
}
