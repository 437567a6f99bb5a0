package tracing

// Span attribute keys for command routing.
const (
	// Input attributes
	AttrInput         = "command.input"
	AttrCommandToken  = "command.token"
	AttrCanonicalKey  = "command.key"
	AttrCommandArgs   = "command.args"
	AttrResolveReason = "command.resolve_reason"

	// Descriptor attributes
	AttrAgentName = "command.agent"
	AttrTier      = "command.tier"
	AttrKind      = "command.kind"

	// Dispatch attributes
	AttrRequestID  = "dispatch.request_id"
	AttrDispatcher = "dispatch.name"

	// Registry attributes
	AttrRegistryPath     = "registry.path"
	AttrRegistryCommands = "registry.commands"
	AttrRegistryAliases  = "registry.aliases"
	AttrRegistryWarnings = "registry.warnings"

	// Error attributes
	AttrErrorMessage = "error.message"
)

// Span names.
const (
	SpanParse    = "command.parse"
	SpanExecute  = "command.execute"
	SpanDispatch = "command.dispatch"
	SpanReload   = "registry.reload"
)

// Event names for span events.
const (
	EventAliasResolved   = "alias.resolved"
	EventCommandResolved = "command.resolved"
	EventResolveFailed   = "command.unresolved"
	EventDispatched      = "command.dispatched"
)
