package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/PabloGalante/bright-road"

// Tracer returns the service tracer. Spans are dropped unless an SDK
// provider has been registered with otel.SetTracerProvider.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// RecordError marks the span as failed.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
