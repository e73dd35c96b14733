package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestOperation_RecordsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	tracer := tp.Tracer("test")

	_, span := StartOperation(context.Background(), tracer, "delete_block", attribute.String(AttrBlockID, "b1"))
	EndOperation(span, true, nil)

	_, span = StartOperation(context.Background(), tracer, "update_block_style")
	EndOperation(span, false, errors.New("bad padding"))

	ended := rec.Ended()
	require.Len(t, ended, 2)

	require.Equal(t, "session.delete_block", ended[0].Name())
	require.Equal(t, codes.Ok, ended[0].Status().Code)
	require.Contains(t, ended[0].Attributes(), attribute.String(AttrBlockID, "b1"))
	require.Contains(t, ended[0].Attributes(), attribute.Bool(AttrChanged, true))

	require.Equal(t, codes.Error, ended[1].Status().Code)
	require.Equal(t, "bad padding", ended[1].Status().Description)
	require.Len(t, ended[1].Events(), 1, "error recorded as event")
}

func TestOperation_NilTracer(t *testing.T) {
	ctx, span := StartOperation(context.Background(), nil, "undo")
	require.NotNil(t, ctx)
	EndOperation(span, false, nil)
}
