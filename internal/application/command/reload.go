package command

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vltrn/slashroute/internal/log"
	"github.com/vltrn/slashroute/internal/pubsub"
	"github.com/vltrn/slashroute/internal/tracing"
	"github.com/vltrn/slashroute/internal/watcher"
)

// ErrNoRegistryFile is returned when hot reload is requested for the built-in registry.
var ErrNoRegistryFile = errors.New("hot reload requires a registry file path")

// ReloadEvent describes one reload attempt.
type ReloadEvent struct {
	Path     string
	Commands int
	Aliases  int
	Warnings int
	Err      error
}

// Reloader recompiles the registry when its file changes and swaps the new
// parser into the service. A failed reload keeps the previous parser.
type Reloader struct {
	loader   Loader
	service  *Service
	debounce time.Duration
	tracer   trace.Tracer
	events   *pubsub.Broker[ReloadEvent]

	mu      sync.Mutex
	watcher *watcher.Watcher
	stop    chan struct{}
	wg      sync.WaitGroup
}

// ReloaderOption configures a Reloader.
type ReloaderOption func(*Reloader)

// WithDebounce sets the quiet period after the last file event.
func WithDebounce(d time.Duration) ReloaderOption {
	return func(r *Reloader) {
		r.debounce = d
	}
}

// WithReloadTracer sets the tracer used for reload spans.
func WithReloadTracer(t trace.Tracer) ReloaderOption {
	return func(r *Reloader) {
		r.tracer = t
	}
}

// NewReloader creates a reloader for loader.Path feeding service.
func NewReloader(service *Service, loader Loader, opts ...ReloaderOption) (*Reloader, error) {
	if loader.Path == "" {
		return nil, ErrNoRegistryFile
	}
	r := &Reloader{
		loader:   loader,
		service:  service,
		debounce: watcher.DefaultDebounce,
		tracer:   noop.NewTracerProvider().Tracer("noop"),
		events:   pubsub.NewBroker[ReloadEvent](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Subscribe returns a channel of reload events until ctx is done.
func (r *Reloader) Subscribe(ctx context.Context) <-chan pubsub.Event[ReloadEvent] {
	return r.events.Subscribe(ctx)
}

// Reload loads and compiles the registry once and swaps it in on success.
func (r *Reloader) Reload(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, tracing.SpanReload, trace.WithAttributes(
		attribute.String(tracing.AttrRegistryPath, r.loader.Path),
	))
	defer span.End()

	parser, err := r.loader.Load()
	if err != nil {
		tracing.RecordError(span, err)
		log.ErrorErr(log.CatRegistry, "Registry reload failed, keeping previous registry", err, "path", r.loader.Path)
		r.events.Publish(pubsub.ReloadFailedEvent, ReloadEvent{Path: r.loader.Path, Err: err})
		return err
	}

	r.service.Swap(parser)

	ev := ReloadEvent{
		Path:     r.loader.Path,
		Commands: parser.Catalog().Index().Len(),
		Aliases:  parser.Catalog().Aliases().Len(),
		Warnings: len(parser.Catalog().Warnings()),
	}
	span.SetAttributes(
		attribute.Int(tracing.AttrRegistryCommands, ev.Commands),
		attribute.Int(tracing.AttrRegistryAliases, ev.Aliases),
		attribute.Int(tracing.AttrRegistryWarnings, ev.Warnings),
	)
	log.Info(log.CatRegistry, "Registry reloaded", "path", ev.Path, "commands", ev.Commands, "aliases", ev.Aliases)
	r.events.Publish(pubsub.ReloadedEvent, ev)
	return nil
}

// Start begins watching the registry file. Reloads run until ctx is done or
// Stop is called.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.watcher != nil {
		return nil
	}

	w, err := watcher.New(watcher.Config{Path: r.loader.Path, Debounce: r.debounce})
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}

	r.watcher = w
	r.stop = make(chan struct{})
	r.wg.Add(1)
	go r.loop(ctx, changes, r.stop)

	log.Debug(log.CatWatcher, "Watching registry", "path", r.loader.Path, "debounce", r.debounce)
	return nil
}

func (r *Reloader) loop(ctx context.Context, changes <-chan struct{}, stop <-chan struct{}) {
	defer r.wg.Done()
	for {
		select {
		case <-changes:
			_ = r.Reload(ctx)
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop stops watching and closes the event broker.
func (r *Reloader) Stop() error {
	r.mu.Lock()
	w := r.watcher
	r.watcher = nil
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
	r.events.Close()

	if w == nil {
		return nil
	}
	return w.Stop()
}
