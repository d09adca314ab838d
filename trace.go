package hxinject

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/pthm/hxinject"

// Span attribute keys.
var (
	AttrComponentKey = attribute.Key("hxinject.component")
	AttrFixedKey     = attribute.Key("hxinject.fixed")
	AttrOverridesKey = attribute.Key("hxinject.overrides")
	AttrPageKey      = attribute.Key("hxinject.page")
	AttrMissingKey   = attribute.Key("hxinject.missing")
)

// startSpan starts a span on the global tracer provider. Without one set the
// span is a no-op.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err, if any, and ends span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		if fields := MissingFields(err); len(fields) > 0 {
			span.SetAttributes(AttrMissingKey.StringSlice(fields))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
