package command

import (
	"errors"
	"fmt"
)

// Compile errors
var (
	ErrDuplicateKey  = errors.New("duplicate command key")
	ErrDanglingAlias = errors.New("alias targets unknown command")
)

// CompileOption configures Compile.
type CompileOption func(*compileOptions)

type compileOptions struct {
	strict bool
}

// Strict rejects collisions, dangling aliases and agentless commands instead
// of reporting them as warnings.
func Strict(strict bool) CompileOption {
	return func(o *compileOptions) {
		o.strict = strict
	}
}

// Compile builds the flat command namespace and alias table from reg.
// Sections are inserted in a fixed order: tiers, workflows, backends,
// providers, validators. A later entry sharing a key replaces the earlier one.
func Compile(reg Registry, opts ...CompileOption) (*Catalog, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &compiler{index: NewIndex()}

	for _, tier := range reg.Tiers {
		for _, spec := range tier.Commands {
			c.add(NewBuilder(KindDirect).
				Key(spec.Name).
				Agent(spec.Agent).
				Description(spec.Description).
				Tier(tier.Clearance).
				Section(tier.Key).
				Domain(spec.Domain).
				SubAgents(spec.SubAgents...).
				SubAgentTotal(spec.SubAgentTotal))
		}
	}

	for _, category := range reg.Workflows {
		for _, name := range category.Workflows {
			c.add(derived(KindWorkflow, name, "").Category(category.Name))
		}
	}

	for _, e := range reg.Backends {
		c.add(derived(KindBackend, e.Name, e.Description).Backend(e.Name))
	}
	for _, e := range reg.Providers {
		c.add(derived(KindProvider, e.Name, e.Description).Provider(e.Name))
	}
	for _, e := range reg.Validators {
		c.add(derived(KindValidator, e.Name, e.Description).Validator(e.Name))
	}

	if c.err != nil {
		return nil, c.err
	}

	aliases := NewAliasTable(reg.Aliases)
	for _, a := range aliases.Entries() {
		if a.Target == "" {
			continue
		}
		if _, ok := c.index.Lookup(a.Target); !ok {
			c.warnings = append(c.warnings, Warning{Kind: WarnDanglingAlias, Key: a.Target, Alias: a.Token})
		}
	}

	if o.strict {
		if err := strictError(c.warnings); err != nil {
			return nil, err
		}
	}

	return &Catalog{
		index:    c.index,
		aliases:  aliases,
		registry: reg,
		counts:   reg.Counts(),
		warnings: c.warnings,
	}, nil
}

// derived starts a builder for a section entry whose key, agent and
// description are synthesized from its name.
func derived(kind Kind, name, description string) *Builder {
	return NewBuilder(kind).
		Key(CanonicalKey(kind, name)).
		Agent(AgentName(kind, name)).
		Description(DefaultDescription(kind, name, description))
}

// missingAgent stands in for the agent of a command authored without one.
const missingAgent = "UNASSIGNED"

type compiler struct {
	index    *Index
	warnings []Warning
	err      error
}

func (c *compiler) add(b *Builder) {
	if c.err != nil {
		return
	}
	if b.d.key != "" && b.d.agent == "" {
		c.warnings = append(c.warnings, Warning{Kind: WarnMissingAgent, Key: b.d.key})
		b = b.Agent(missingAgent)
	}
	d, err := b.Build()
	if err != nil {
		c.err = fmt.Errorf("%s entry %q: %w", b.d.kind.Section(), b.d.key, err)
		return
	}
	prev, err := c.index.Put(d)
	if err != nil {
		c.err = err
		return
	}
	if prev != nil {
		c.warnings = append(c.warnings, Warning{
			Kind:     WarnCollision,
			Key:      d.Key(),
			Previous: prev.Kind(),
			Replaced: d.Kind(),
		})
	}
}

func strictError(warnings []Warning) error {
	var errs []error
	for _, w := range warnings {
		switch w.Kind {
		case WarnCollision:
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateKey, w))
		case WarnDanglingAlias:
			errs = append(errs, fmt.Errorf("%w: %s", ErrDanglingAlias, w))
		case WarnMissingAgent:
			errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyAgent, w))
		}
	}
	return errors.Join(errs...)
}
