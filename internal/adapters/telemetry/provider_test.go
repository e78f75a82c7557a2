package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/frob/internal/adapters/telemetry"
	"go.trai.ch/frob/internal/core/ports"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracerFromProvider(tp, "test")
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestOTelTracer_StartAttributes(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "solve",
		ports.WithAttribute("frob.coins", "[3 5 7]"),
		ports.WithAttribute("frob.strategy", "round_robin"),
	)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "solve", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "[3 5 7]", attrs["frob.coins"].AsString())
	assert.Equal(t, "round_robin", attrs["frob.strategy"].AsString())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "solve.sieve")
	span.SetAttribute("frob.bound", uint64(113))
	span.SetAttribute("frob.huge", uint64(1<<63))
	span.SetAttribute("frob.parallel", true)
	span.SetAttribute("frob.threads", 4)
	span.SetAttribute("frob.ratio", 1.5)
	span.SetAttribute("frob.coins", []string{"3", "5"})
	span.SetAttribute("frob.other", struct{ A int }{A: 1})
	span.End()

	attrs := attrMap(sr.Ended()[0].Attributes())
	assert.Equal(t, int64(113), attrs["frob.bound"].AsInt64())
	assert.Equal(t, "9223372036854775808", attrs["frob.huge"].AsString())
	assert.True(t, attrs["frob.parallel"].AsBool())
	assert.Equal(t, int64(4), attrs["frob.threads"].AsInt64())
	assert.InDelta(t, 1.5, attrs["frob.ratio"].AsFloat64(), 1e-9)
	assert.Equal(t, []string{"3", "5"}, attrs["frob.coins"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["frob.other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "solve")
	span.RecordError(nil)
	span.RecordError(errors.New("coins are not coprime"))
	span.End()

	status := sr.Ended()[0].Status()
	assert.Equal(t, codes.Error, status.Code)
	assert.Equal(t, "coins are not coprime", status.Description)
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	sr, tracer := setupRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "solve")
	_, child := tracer.Start(ctx, "solve.round_robin")
	child.End()
	parent.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestNewOTelTracer_Global(t *testing.T) {
	tracer := telemetry.NewOTelTracer("frob")
	_, span := tracer.Start(context.Background(), "solve")
	assert.NotPanics(t, span.End)
}
