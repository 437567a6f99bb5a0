package command

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/log"
	"github.com/vltrn/slashroute/internal/tracing"
)

// DispatchRequest is handed to the external executor for a resolved command.
type DispatchRequest struct {
	ID      string
	Agent   string
	Command string
	Args    string
	Tier    domaincmd.Tier
}

// Receipt is what a Dispatcher reports back.
type Receipt struct {
	Message string
}

// Dispatcher delivers resolved commands to whatever executes agents.
type Dispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) (Receipt, error)
}

// ExecutionResult is the outcome of Execute. Resolution failures are
// reported here with Success=false rather than as errors.
type ExecutionResult struct {
	Success     bool
	RequestID   string
	Agent       string
	Command     string
	Args        string
	Tier        domaincmd.Tier
	Message     string
	Error       string
	Reason      Reason
	Suggestions []Suggestion
}

// Service holds the current parser and hands resolved commands to a
// Dispatcher. The parser can be swapped while requests are in flight.
type Service struct {
	current    atomic.Pointer[Parser]
	dispatcher Dispatcher
	tracer     trace.Tracer
	newID      func() string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTracer sets the tracer used for parse and execute spans.
func WithTracer(t trace.Tracer) ServiceOption {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithRequestIDs overrides request ID generation.
func WithRequestIDs(fn func() string) ServiceOption {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService creates a service serving parser.
func NewService(parser *Parser, dispatcher Dispatcher, opts ...ServiceOption) *Service {
	s := &Service{
		dispatcher: dispatcher,
		tracer:     noop.NewTracerProvider().Tracer("noop"),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(parser)
	return s
}

// Parser returns the parser currently being served.
func (s *Service) Parser() *Parser {
	return s.current.Load()
}

// Swap installs parser and returns the previous one.
func (s *Service) Swap(parser *Parser) *Parser {
	return s.current.Swap(parser)
}

// Parse resolves input against the current parser inside a span.
func (s *Service) Parse(ctx context.Context, input string) (Invocation, error) {
	_, span := s.tracer.Start(ctx, tracing.SpanParse, trace.WithAttributes(attribute.String(tracing.AttrInput, input)))
	defer span.End()

	inv, err := s.Parser().Parse(input)
	if err != nil {
		var rerr *ResolutionError
		if errors.As(err, &rerr) {
			span.SetAttributes(
				attribute.String(tracing.AttrCommandToken, rerr.Token),
				attribute.String(tracing.AttrResolveReason, string(rerr.Reason)),
			)
		}
		span.AddEvent(tracing.EventResolveFailed)
		return inv, err
	}

	if inv.OriginalCommand != inv.Command {
		span.AddEvent(tracing.EventAliasResolved)
	}
	span.AddEvent(tracing.EventCommandResolved)
	span.SetAttributes(
		attribute.String(tracing.AttrCommandToken, inv.OriginalCommand),
		attribute.String(tracing.AttrCanonicalKey, inv.Command),
		attribute.String(tracing.AttrAgentName, inv.Agent),
		attribute.String(tracing.AttrTier, inv.Tier.String()),
		attribute.String(tracing.AttrKind, inv.Descriptor.Kind().String()),
	)
	span.SetStatus(codes.Ok, "")
	return inv, nil
}

// Execute parses input and, on success, dispatches it. A token that does not
// resolve yields Success=false and a nil error; dispatcher errors are
// returned wrapped and never retried.
func (s *Service) Execute(ctx context.Context, input string) (ExecutionResult, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanExecute)
	defer span.End()

	inv, err := s.Parse(ctx, input)
	if err != nil {
		var rerr *ResolutionError
		if !errors.As(err, &rerr) {
			tracing.RecordError(span, err)
			return ExecutionResult{}, err
		}
		return ExecutionResult{
			Success:     false,
			Error:       rerr.Error(),
			Reason:      rerr.Reason,
			Suggestions: rerr.Suggestions,
		}, nil
	}

	req := DispatchRequest{
		ID:      s.newID(),
		Agent:   inv.Agent,
		Command: inv.Command,
		Args:    inv.Args,
		Tier:    inv.Tier,
	}
	span.SetAttributes(attribute.String(tracing.AttrRequestID, req.ID))

	receipt, err := s.dispatch(ctx, req)
	if err != nil {
		tracing.RecordError(span, err)
		log.ErrorErr(log.CatDispatch, "Dispatch failed", err, "request", req.ID, "agent", req.Agent)
		return ExecutionResult{}, fmt.Errorf("dispatch %s: %w", req.Command, err)
	}

	log.Info(log.CatDispatch, "Dispatched command", "request", req.ID, "command", req.Command, "agent", req.Agent, "tier", req.Tier)
	return ExecutionResult{
		Success:   true,
		RequestID: req.ID,
		Agent:     req.Agent,
		Command:   req.Command,
		Args:      req.Args,
		Tier:      req.Tier,
		Message:   receipt.Message,
	}, nil
}

func (s *Service) dispatch(ctx context.Context, req DispatchRequest) (Receipt, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanDispatch, trace.WithAttributes(
		attribute.String(tracing.AttrRequestID, req.ID),
		attribute.String(tracing.AttrAgentName, req.Agent),
		attribute.String(tracing.AttrCommandArgs, req.Args),
	))
	defer span.End()

	receipt, err := s.dispatcher.Dispatch(ctx, req)
	if err != nil {
		tracing.RecordError(span, err)
		return Receipt{}, err
	}
	span.AddEvent(tracing.EventDispatched)
	return receipt, nil
}
