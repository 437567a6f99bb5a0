package command

// Catalog is a compiled registry: the command namespace, the alias table and
// the section sizes of the description it was built from. It is immutable
// and safe for concurrent readers.
type Catalog struct {
	index    *Index
	aliases  *AliasTable
	registry Registry
	counts   SectionCounts
	warnings []Warning
}

// Index returns the command namespace.
func (c *Catalog) Index() *Index {
	return c.index
}

// Aliases returns the alias table.
func (c *Catalog) Aliases() *AliasTable {
	return c.aliases
}

// Counts returns the section sizes of the source registry.
func (c *Catalog) Counts() SectionCounts {
	return c.counts
}

// Tier returns the tier section with the given key from the source registry.
func (c *Catalog) Tier(key string) (TierSection, bool) {
	return c.registry.Tier(key)
}

// TierKeys returns the tier section keys in authoring order.
func (c *Catalog) TierKeys() []string {
	keys := make([]string, len(c.registry.Tiers))
	for i, t := range c.registry.Tiers {
		keys[i] = t.Key
	}
	return keys
}

// Warnings returns a copy of the construction warnings.
func (c *Catalog) Warnings() []Warning {
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Resolve maps token through the alias table. The second result reports
// whether token was an alias. An alias with an empty target leaves token as is.
func (c *Catalog) Resolve(token string) (string, bool) {
	if target, ok := c.aliases.Resolve(token); ok && target != "" {
		return target, true
	}
	return token, false
}

// Lookup returns the descriptor for a canonical key.
func (c *Catalog) Lookup(key string) (*Descriptor, bool) {
	return c.index.Lookup(key)
}
