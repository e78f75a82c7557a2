package solver

import (
	"context"
	"time"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}

type nopMetrics struct{}

func (nopMetrics) ObserveSolve(domain.Strategy, time.Duration, error) {}
func (nopMetrics) CacheHit()                                          {}
func (nopMetrics) CacheMiss()                                         {}
func (nopMetrics) Fallback()                                          {}
func (nopMetrics) BenchmarkMismatch()                                 {}
func (nopMetrics) Export(string) error                                { return nil }
