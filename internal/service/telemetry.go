package service

import (
	"context"

	"github.com/metinatakli/cinema-schedule/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-schedule/internal/service"

type instruments struct {
	tracer    trace.Tracer
	published metric.Int64Counter
	rejected  metric.Int64Counter
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	published, err := meter.Int64Counter("catalogue.publications",
		metric.WithDescription("Records published, by entity"))
	if err != nil {
		published = noop.Int64Counter{}
	}

	rejected, err := meter.Int64Counter("catalogue.publications.rejected",
		metric.WithDescription("Publications rejected, by entity and error kind"))
	if err != nil {
		rejected = noop.Int64Counter{}
	}

	return instruments{
		tracer:    otel.Tracer(instrumentationName),
		published: published,
		rejected:  rejected,
	}
}

// finish ends span and counts the outcome of a publication.
func (i instruments) finish(ctx context.Context, span trace.Span, entity domain.Entity, err error) {
	defer span.End()

	if err == nil {
		i.published.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", string(entity))))
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	i.rejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", string(entity)),
		attribute.String("kind", string(domain.KindOf(err))),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
