// Package dispatch provides Dispatcher implementations for resolved commands.
package dispatch

import (
	"context"
	"fmt"

	"github.com/vltrn/slashroute/internal/application/command"
	"github.com/vltrn/slashroute/internal/log"
)

// PreviewDispatcher reports what would be executed without calling any
// executor. It is the only built-in dispatcher.
type PreviewDispatcher struct{}

// NewPreviewDispatcher creates a PreviewDispatcher.
func NewPreviewDispatcher() *PreviewDispatcher {
	return &PreviewDispatcher{}
}

// Dispatch implements command.Dispatcher.
func (PreviewDispatcher) Dispatch(ctx context.Context, req command.DispatchRequest) (command.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return command.Receipt{}, err
	}
	log.Debug(log.CatDispatch, "Preview dispatch", "request", req.ID, "agent", req.Agent, "tier", req.Tier)
	return command.Receipt{
		Message: fmt.Sprintf("Command would be executed: %s - %s", req.Agent, req.Args),
	}, nil
}

var _ command.Dispatcher = PreviewDispatcher{}
