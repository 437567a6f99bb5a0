package command

import (
	"errors"
	"strings"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

// ErrUnknownTopic is returned by Topic for a name that is neither a tier key
// nor a derived section.
var ErrUnknownTopic = errors.New("unknown help topic")

// ListOptions filters List. Empty fields match everything; set fields must
// all match.
type ListOptions struct {
	Tier   domaincmd.Tier
	Domain string // matches the command domain or workflow category
	Search string // substring of the key, or case-insensitive substring of the description
}

func (o ListOptions) matches(d *domaincmd.Descriptor) bool {
	if o.Tier != "" && d.Tier() != o.Tier {
		return false
	}
	if o.Domain != "" && !d.MatchesDomain(o.Domain) {
		return false
	}
	if o.Search != "" &&
		!strings.Contains(d.Key(), o.Search) &&
		!strings.Contains(strings.ToLower(d.Description()), strings.ToLower(o.Search)) {
		return false
	}
	return true
}

// List returns the descriptors matching opts in namespace order.
func (p *Parser) List(opts ListOptions) []*domaincmd.Descriptor {
	out := make([]*domaincmd.Descriptor, 0)
	for _, d := range p.catalog.Index().Descriptors() {
		if opts.matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// Info describes one command and the aliases that point at it.
type Info struct {
	Descriptor *domaincmd.Descriptor
	Aliases    []string
}

// Info resolves token through the alias table and returns the command with
// its reverse aliases. Returns domaincmd.ErrNotFound when absent.
func (p *Parser) Info(token string) (Info, error) {
	key, _ := p.catalog.Resolve(token)
	d, err := p.catalog.Index().Get(key)
	if err != nil {
		return Info{}, err
	}
	return Info{Descriptor: d, Aliases: p.catalog.Aliases().AliasesFor(key)}, nil
}

// Stats summarises the compiled namespace. Section totals come from the
// registry description, so they are stable under key collisions.
type Stats struct {
	TotalCommands    int
	TotalAliases     int
	ByTier           map[string]int
	Tiers            int
	Workflows        int // workflow categories
	NvidiaBackends   int
	LLMProviders     int
	OracleValidators int
	Warnings         int
}

// Stats computes namespace statistics.
func (p *Parser) Stats() Stats {
	counts := p.catalog.Counts()
	s := Stats{
		TotalCommands:    p.catalog.Index().Len(),
		TotalAliases:     p.catalog.Aliases().Len(),
		ByTier:           make(map[string]int),
		Tiers:            counts.Tiers,
		Workflows:        counts.WorkflowCategories,
		NvidiaBackends:   counts.Backends,
		LLMProviders:     counts.Providers,
		OracleValidators: counts.Validators,
		Warnings:         len(p.catalog.Warnings()),
	}
	for _, d := range p.catalog.Index().Descriptors() {
		s.ByTier[d.Tier().Label()]++
	}
	return s
}

// Topic is a help page: one tier section or one derived section.
type Topic struct {
	Name      string
	Clearance domaincmd.Tier // set for tier topics
	Commands  []*domaincmd.Descriptor
}

var derivedTopics = map[string]domaincmd.Kind{
	domaincmd.KindWorkflow.Section():  domaincmd.KindWorkflow,
	domaincmd.KindBackend.Section():   domaincmd.KindBackend,
	domaincmd.KindProvider.Section():  domaincmd.KindProvider,
	domaincmd.KindValidator.Section(): domaincmd.KindValidator,
}

// Topics returns the available help topic names: tier keys in authoring
// order, then the derived sections.
func (p *Parser) Topics() []string {
	topics := p.catalog.TierKeys()
	for _, k := range []domaincmd.Kind{domaincmd.KindWorkflow, domaincmd.KindBackend, domaincmd.KindProvider, domaincmd.KindValidator} {
		topics = append(topics, k.Section())
	}
	return topics
}

// Topic returns the help page for name. Tier topics list the commands still
// owned by that tier after compilation.
func (p *Parser) Topic(name string) (Topic, error) {
	if tier, ok := p.catalog.Tier(name); ok {
		t := Topic{Name: name, Clearance: tier.Clearance}
		for _, d := range p.catalog.Index().Descriptors() {
			if d.Kind() == domaincmd.KindDirect && d.Section() == name {
				t.Commands = append(t.Commands, d)
			}
		}
		return t, nil
	}

	if kind, ok := derivedTopics[name]; ok {
		t := Topic{Name: name}
		for _, d := range p.catalog.Index().Descriptors() {
			if d.Kind() == kind {
				t.Commands = append(t.Commands, d)
			}
		}
		return t, nil
	}

	return Topic{}, ErrUnknownTopic
}
