package command

// Alias maps one alias token to a canonical command key.
type Alias struct {
	Token  string
	Target string
}

// AliasTable is an ordered alias → key table. Reverse lookups scan linearly;
// alias counts are small.
type AliasTable struct {
	entries []Alias
	byToken map[string]int
}

// NewAliasTable builds a table preserving entry order. A repeated token
// replaces the earlier target in place.
func NewAliasTable(entries []Alias) *AliasTable {
	t := &AliasTable{
		entries: make([]Alias, 0, len(entries)),
		byToken: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if i, ok := t.byToken[e.Token]; ok {
			t.entries[i].Target = e.Target
			continue
		}
		t.byToken[e.Token] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t
}

// Resolve returns the target key for token.
func (t *AliasTable) Resolve(token string) (string, bool) {
	i, ok := t.byToken[token]
	if !ok {
		return "", false
	}
	return t.entries[i].Target, true
}

// AliasesFor returns every alias token whose target equals key, in table order.
func (t *AliasTable) AliasesFor(key string) []string {
	aliases := make([]string, 0)
	for _, e := range t.entries {
		if e.Target == key {
			aliases = append(aliases, e.Token)
		}
	}
	return aliases
}

// Entries returns a copy of the table in insertion order.
func (t *AliasTable) Entries() []Alias {
	out := make([]Alias, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of aliases.
func (t *AliasTable) Len() int {
	return len(t.entries)
}
