// Package testutil builds registry fixtures in code for tests outside the
// domain package.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

// Builder accumulates registry sections in authoring order.
type Builder struct {
	t   *testing.T
	reg domaincmd.Registry
}

// NewBuilder creates an empty registry builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithTier adds a tier section with its direct commands.
func (b *Builder) WithTier(key string, clearance domaincmd.Tier, commands ...domaincmd.CommandSpec) *Builder {
	b.reg.Tiers = append(b.reg.Tiers, domaincmd.TierSection{Key: key, Clearance: clearance, Commands: commands})
	return b
}

// WithWorkflows adds a workflow category.
func (b *Builder) WithWorkflows(category string, names ...string) *Builder {
	b.reg.Workflows = append(b.reg.Workflows, domaincmd.WorkflowCategory{Name: category, Workflows: names})
	return b
}

// WithBackend adds an nvidia entry.
func (b *Builder) WithBackend(name, description string) *Builder {
	b.reg.Backends = append(b.reg.Backends, domaincmd.Entry{Name: name, Description: description})
	return b
}

// WithProvider adds an llm entry.
func (b *Builder) WithProvider(name, description string) *Builder {
	b.reg.Providers = append(b.reg.Providers, domaincmd.Entry{Name: name, Description: description})
	return b
}

// WithValidator adds an oracle entry.
func (b *Builder) WithValidator(name, description string) *Builder {
	b.reg.Validators = append(b.reg.Validators, domaincmd.Entry{Name: name, Description: description})
	return b
}

// WithAlias adds an alias. The target is not checked.
func (b *Builder) WithAlias(token, target string) *Builder {
	b.reg.Aliases = append(b.reg.Aliases, domaincmd.Alias{Token: token, Target: target})
	return b
}

// Registry returns the accumulated registry description.
func (b *Builder) Registry() domaincmd.Registry {
	return b.reg
}

// Catalog compiles the registry leniently and fails the test on error.
func (b *Builder) Catalog() *domaincmd.Catalog {
	b.t.Helper()
	catalog, err := domaincmd.Compile(b.reg)
	require.NoError(b.t, err, "compiling fixture registry")
	return catalog
}
