package command

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/vltrn/slashroute/internal/cachemanager"
	domaincmd "github.com/vltrn/slashroute/internal/domain/command"
	"github.com/vltrn/slashroute/internal/log"
)

// ErrUnknownCommand is wrapped by every *ResolutionError.
var ErrUnknownCommand = errors.New("unknown command")

// Reason tells why a token did not resolve.
type Reason string

const (
	// ReasonUnknownCommand means the token is neither an alias nor a command key.
	ReasonUnknownCommand Reason = "unknown-command"
	// ReasonDanglingAlias means the token is an alias whose target is missing.
	ReasonDanglingAlias Reason = "dangling-alias"
)

// Invocation is a successfully resolved command.
type Invocation struct {
	Command         string // canonical key
	OriginalCommand string // token as typed
	Agent           string
	Description     string
	Tier            domaincmd.Tier
	Args            string
	Descriptor      *domaincmd.Descriptor
}

// ResolutionError is returned by Parse when the command token does not resolve.
type ResolutionError struct {
	Token       string // unresolved token as typed
	Target      string // alias target for ReasonDanglingAlias
	Reason      Reason
	Suggestions []Suggestion
}

func (e *ResolutionError) Error() string {
	return "Unknown command: " + e.Token
}

// Unwrap exposes ErrUnknownCommand, and ErrDanglingAlias for dangling aliases.
func (e *ResolutionError) Unwrap() []error {
	if e.Reason == ReasonDanglingAlias {
		return []error{ErrUnknownCommand, domaincmd.ErrDanglingAlias}
	}
	return []error{ErrUnknownCommand}
}

// Parser resolves slash input against one compiled catalog. It never mutates
// the catalog and is safe for concurrent use.
type Parser struct {
	catalog  *domaincmd.Catalog
	cache    *cachemanager.ReadThroughCache[string, []Suggestion, string]
	cacheTTL time.Duration
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithSuggestionCache memoises Suggest results for ttl. Each parser gets its
// own cache, so a reloaded registry never serves stale suggestions.
func WithSuggestionCache(ttl time.Duration) ParserOption {
	return func(p *Parser) {
		if ttl <= 0 {
			ttl = cachemanager.DefaultExpiration
		}
		cm := cachemanager.NewInMemoryCacheManager[string, []Suggestion]("suggestions", ttl, cachemanager.DefaultCleanupInterval)
		p.setCache(cm, ttl)
	}
}

// WithSuggestionCacheManager memoises Suggest results in cm.
func WithSuggestionCacheManager(cm cachemanager.CacheManager[string, []Suggestion], ttl time.Duration) ParserOption {
	return func(p *Parser) {
		p.setCache(cm, ttl)
	}
}

func (p *Parser) setCache(cm cachemanager.CacheManager[string, []Suggestion], ttl time.Duration) {
	p.cacheTTL = ttl
	p.cache = cachemanager.NewReadThroughCache(cm, func(_ context.Context, partial string) ([]Suggestion, error) {
		return suggest(p.catalog, partial), nil
	}, false)
}

// NewParser creates a parser over catalog.
func NewParser(catalog *domaincmd.Catalog, opts ...ParserOption) *Parser {
	p := &Parser{catalog: catalog}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Catalog returns the compiled catalog the parser reads.
func (p *Parser) Catalog() *domaincmd.Catalog {
	return p.catalog
}

// Parse resolves input into an Invocation. On failure the error is always a
// *ResolutionError carrying suggestions for the token as typed.
func (p *Parser) Parse(input string) (Invocation, error) {
	token, args := splitInput(input)

	key, isAlias := p.catalog.Resolve(token)
	desc, ok := p.catalog.Lookup(key)
	if !ok {
		rerr := &ResolutionError{
			Token:       token,
			Reason:      ReasonUnknownCommand,
			Suggestions: p.Suggest(token),
		}
		if isAlias {
			rerr.Reason = ReasonDanglingAlias
			rerr.Target = key
		}
		log.Debug(log.CatParser, "Command did not resolve", "token", token, "reason", rerr.Reason, "suggestions", len(rerr.Suggestions))
		return Invocation{}, rerr
	}

	return Invocation{
		Command:         key,
		OriginalCommand: token,
		Agent:           desc.Agent(),
		Description:     desc.Description(),
		Tier:            desc.Tier(),
		Args:            args,
		Descriptor:      desc,
	}, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// splitInput strips one leading slash, then splits on whitespace runs. The
// first field is the command token; the rest are rejoined with single spaces.
// Input is not trimmed: leading whitespace yields an empty token and trailing
// whitespace leaves one trailing space in args.
func splitInput(input string) (token, args string) {
	input = strings.TrimPrefix(input, "/")
	fields := whitespaceRun.Split(input, -1)
	return fields[0], strings.Join(fields[1:], " ")
}

// Suggest returns at most MaxSuggestions prefix matches for partial, alias
// matches first.
func (p *Parser) Suggest(partial string) []Suggestion {
	if p.cache == nil {
		return suggest(p.catalog, partial)
	}
	// The loader never fails.
	cached, _ := p.cache.Get(context.Background(), partial, partial, p.cacheTTL)
	return slices.Clone(cached)
}
