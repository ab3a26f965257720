// Package feed runs background line producers for scroll panels.
//
// Producers never touch a panel's buffer. They hand messages to a Sink,
// normally (*tea.Program).Send, and the Bubble Tea event loop applies them
// on the UI goroutine.
package feed

import (
	"context"
	"errors"
	"sync/atomic"

	"scrollpanel/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "scrollpanel/feed"

// Sink receives messages destined for the UI. It must be safe to call from
// any goroutine.
type Sink func(tea.Msg)

// Source produces lines for one panel.
type Source interface {
	Name() string
	Target() string
	Run(ctx context.Context, sink Sink) error
}

// Run starts every source and blocks until all have returned.
// The first failing source cancels the rest. Each finished source is
// reported to sink as a ui.SourceDoneMsg. Cancellation is not an error.
func Run(ctx context.Context, sink Sink, sources ...Source) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		eg.Go(func() error {
			err := runOne(ctx, sink, src)
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			sink(ui.SourceDoneMsg{Source: src.Name(), Target: src.Target(), Err: err})
			return err
		})
	}
	return eg.Wait()
}

func runOne(ctx context.Context, sink Sink, src Source) error {
	log := zerolog.Ctx(ctx).With().Str("source", src.Name()).Str("panel", src.Target()).Logger()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "feed.source",
		oteltrace.WithAttributes(
			attribute.String("scrollpanel.source", src.Name()),
			attribute.String("scrollpanel.panel", src.Target()),
		))
	defer span.End()

	var lines atomic.Int64
	counted := func(msg tea.Msg) {
		if _, ok := msg.(ui.AppendLineMsg); ok {
			lines.Add(1)
		}
		log.Trace().Interface("msg", msg).Msg("line")
		sink(msg)
	}

	log.Debug().Msg("source started")
	err := src.Run(ctx, counted)
	span.SetAttributes(attribute.Int64("scrollpanel.lines", lines.Load()))
	if err != nil && !errors.Is(err, context.Canceled) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error().Err(err).Msg("source failed")
		return err
	}
	log.Debug().Int64("lines", lines.Load()).Msg("source stopped")
	return err
}
