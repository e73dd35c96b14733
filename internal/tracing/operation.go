package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var noopTracer = noop.NewTracerProvider().Tracer("noop")

// StartOperation opens the span for a session operation. A nil tracer yields
// a non-recording span.
func StartOperation(ctx context.Context, tracer trace.Tracer, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = noopTracer
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, SpanPrefixSession+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndOperation records the outcome and ends span.
func EndOperation(span trace.Span, changed bool, err error) {
	span.SetAttributes(attribute.Bool(AttrChanged, changed))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
