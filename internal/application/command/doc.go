// Package command implements the application layer for slash command routing.
//
// This package bridges the pure domain catalog (internal/domain/command) to
// infrastructure concerns:
//   - Loads registry descriptions from YAML (embedded default or a file on disk)
//   - Parses raw slash input into invocations or resolution errors with suggestions
//   - Answers introspection queries (list, info, stats, help topics)
//   - Hands resolved invocations to a Dispatcher
//   - Recompiles and swaps the catalog when the registry file changes
//
// # Parser
//
// Parser wraps one compiled Catalog. It is immutable and safe for concurrent
// use. A new registry produces a new Parser; Service swaps it atomically.
//
// # Import Aliasing
//
// This package has the same name as the domain command package. When importing
// both, alias the domain package:
//
//	import (
//	    domaincmd "github.com/vltrn/slashroute/internal/domain/command"
//	    "github.com/vltrn/slashroute/internal/application/command"
//	)
package command
