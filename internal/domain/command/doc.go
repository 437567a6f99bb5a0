// Package command implements the domain layer for slash-command resolution.
//
// This package follows the same rules as the rest of the domain layer:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines entity types (Descriptor, Catalog) and value objects (Tier, Kind, Alias)
//   - Implements the compilation of a registry description into one flat namespace
//   - Has no knowledge of infrastructure concerns (file I/O, YAML parsing, logging)
//
// # Core Types
//
// Registry is the already-parsed registry description: tiered command groups,
// workflow categories, NVIDIA backends, LLM providers, oracle validators and aliases.
//
// Descriptor is one invocable unit. Its Kind discriminates the source section
// (direct, workflow, backend, provider, validator) and decides which optional
// metadata is present. Use Builder for construction.
//
// Index is the ordered, immutable key → Descriptor namespace. AliasTable maps
// short alias tokens onto canonical keys.
//
// # Compilation
//
// Compile walks the registry sections in a fixed order (tiers, workflows,
// backends, providers, validators) and produces a Catalog. Key collisions keep
// the last writer and dangling aliases are kept as-is; both are reported as
// Warnings, or rejected when compiling with Strict.
//
// # Naming
//
// CanonicalKey and AgentName are the only places where section names become
// command keys and agent identifiers:
//
//	CanonicalKey(KindWorkflow, "close-books") == "workflow.close-books"
//	AgentName(KindWorkflow, "close-books")    == "WORKFLOW_CLOSE_BOOKS"
package command
