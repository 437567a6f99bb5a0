package command

// Namespace defines read-only access to a compiled command namespace.
// This interface lets the application layer depend on lookups without
// knowing how the catalog was compiled.
type Namespace interface {
	// Resolve maps a token through the alias table, reporting whether it was an alias.
	Resolve(token string) (string, bool)

	// Lookup returns the descriptor for a canonical key.
	Lookup(key string) (*Descriptor, bool)

	// Index returns the full command namespace.
	Index() *Index

	// Aliases returns the alias table.
	Aliases() *AliasTable

	// Counts returns the registry section sizes.
	Counts() SectionCounts
}

// Compile-time check that Catalog implements Namespace.
var _ Namespace = (*Catalog)(nil)
