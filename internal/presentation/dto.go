package presentation

import (
	"github.com/vltrn/slashroute/internal/application/command"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
)

// CommandDTO represents one compiled command for presentation
type CommandDTO struct {
	Command       string   `json:"command"`
	Agent         string   `json:"agent"`
	Description   string   `json:"description"`
	Tier          string   `json:"tier"`
	Kind          string   `json:"kind"`
	Section       string   `json:"section,omitempty"`
	Domain        string   `json:"domain,omitempty"`
	Category      string   `json:"category,omitempty"`
	Backend       string   `json:"backend,omitempty"`
	Provider      string   `json:"provider,omitempty"`
	Validator     string   `json:"validator,omitempty"`
	SubAgents     []string `json:"subAgents,omitempty"`
	SubAgentTotal int      `json:"subAgentTotal,omitempty"`
	Aliases       []string `json:"aliases,omitempty"`
}

// InvocationDTO is a successful parse
type InvocationDTO struct {
	Valid           bool   `json:"valid"`
	Command         string `json:"command"`
	OriginalCommand string `json:"originalCommand"`
	Agent           string `json:"agent"`
	Description     string `json:"description"`
	Tier            string `json:"tier"`
	Args            string `json:"args"`
}

// ResolutionDTO is a failed parse
type ResolutionDTO struct {
	Valid       bool            `json:"valid"`
	Error       string          `json:"error"`
	Reason      string          `json:"reason"`
	Suggestions []SuggestionDTO `json:"suggestions"`
}

// SuggestionDTO is one suggestion; Type is "alias" or "command"
type SuggestionDTO struct {
	Command     string `json:"command"`
	Resolves    string `json:"resolves,omitempty"`
	Agent       string `json:"agent,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

// StatsDTO mirrors command.Stats
type StatsDTO struct {
	TotalCommands    int            `json:"totalCommands"`
	TotalAliases     int            `json:"totalAliases"`
	ByTier           map[string]int `json:"byTier"`
	Tiers            int            `json:"tiers"`
	Workflows        int            `json:"workflows"`
	NvidiaBackends   int            `json:"nvidiaBackends"`
	LLMProviders     int            `json:"llmProviders"`
	OracleValidators int            `json:"oracleValidators"`
	Warnings         int            `json:"warnings"`
}

// ExecutionDTO is the outcome of executing a command
type ExecutionDTO struct {
	Success     bool            `json:"success"`
	RequestID   string          `json:"requestId,omitempty"`
	Agent       string          `json:"agent,omitempty"`
	Command     string          `json:"command,omitempty"`
	Args        string          `json:"args,omitempty"`
	Tier        string          `json:"tier,omitempty"`
	Message     string          `json:"message,omitempty"`
	Error       string          `json:"error,omitempty"`
	Suggestions []SuggestionDTO `json:"suggestions,omitempty"`
}

// WarningDTO is a registry construction warning
type WarningDTO struct {
	Kind    string `json:"kind"`
	Key     string `json:"key"`
	Alias   string `json:"alias,omitempty"`
	Message string `json:"message"`
}

// TopicDTO is a help topic
type TopicDTO struct {
	Topic     string       `json:"topic"`
	Clearance string       `json:"clearance,omitempty"`
	Commands  []CommandDTO `json:"commands"`
}

// FromDescriptor converts a domain descriptor to a DTO
func FromDescriptor(d *domaincmd.Descriptor) CommandDTO {
	return CommandDTO{
		Command:       d.Key(),
		Agent:         d.Agent(),
		Description:   d.Description(),
		Tier:          d.Tier().String(),
		Kind:          d.Kind().String(),
		Section:       d.Section(),
		Domain:        d.Domain(),
		Category:      d.Category(),
		Backend:       d.Backend(),
		Provider:      d.Provider(),
		Validator:     d.Validator(),
		SubAgents:     d.SubAgents(),
		SubAgentTotal: d.SubAgentTotal(),
	}
}

// FromDescriptors converts a slice of descriptors to DTOs
func FromDescriptors(ds []*domaincmd.Descriptor) []CommandDTO {
	dtos := make([]CommandDTO, len(ds))
	for i, d := range ds {
		dtos[i] = FromDescriptor(d)
	}
	return dtos
}

// FromInfo converts an info result, including reverse aliases
func FromInfo(info command.Info) CommandDTO {
	dto := FromDescriptor(info.Descriptor)
	dto.Aliases = info.Aliases
	return dto
}

// FromInvocation converts a successful parse
func FromInvocation(inv command.Invocation) InvocationDTO {
	return InvocationDTO{
		Valid:           true,
		Command:         inv.Command,
		OriginalCommand: inv.OriginalCommand,
		Agent:           inv.Agent,
		Description:     inv.Description,
		Tier:            inv.Tier.String(),
		Args:            inv.Args,
	}
}

// FromResolutionError converts a failed parse
func FromResolutionError(err *command.ResolutionError) ResolutionDTO {
	return ResolutionDTO{
		Valid:       false,
		Error:       err.Error(),
		Reason:      string(err.Reason),
		Suggestions: FromSuggestions(err.Suggestions),
	}
}

// FromSuggestions converts suggestions; the result is never nil
func FromSuggestions(ss []command.Suggestion) []SuggestionDTO {
	dtos := make([]SuggestionDTO, len(ss))
	for i, s := range ss {
		dtos[i] = SuggestionDTO{
			Command:     s.Token,
			Resolves:    s.ResolvesTo,
			Agent:       s.Agent,
			Description: s.Description,
			Type:        string(s.Kind),
		}
	}
	return dtos
}

// FromStats converts namespace statistics
func FromStats(s command.Stats) StatsDTO {
	return StatsDTO(s)
}

// FromExecution converts an execution result
func FromExecution(r command.ExecutionResult) ExecutionDTO {
	dto := ExecutionDTO{
		Success:   r.Success,
		RequestID: r.RequestID,
		Agent:     r.Agent,
		Command:   r.Command,
		Args:      r.Args,
		Tier:      r.Tier.String(),
		Message:   r.Message,
		Error:     r.Error,
	}
	if len(r.Suggestions) > 0 {
		dto.Suggestions = FromSuggestions(r.Suggestions)
	}
	return dto
}

// FromWarnings converts construction warnings
func FromWarnings(ws []domaincmd.Warning) []WarningDTO {
	dtos := make([]WarningDTO, len(ws))
	for i, w := range ws {
		dtos[i] = WarningDTO{Kind: string(w.Kind), Key: w.Key, Alias: w.Alias, Message: w.String()}
	}
	return dtos
}

// FromTopic converts a help topic
func FromTopic(t command.Topic) TopicDTO {
	return TopicDTO{
		Topic:     t.Name,
		Clearance: t.Clearance.String(),
		Commands:  FromDescriptors(t.Commands),
	}
}
