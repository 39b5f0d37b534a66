package service

import (
	"context"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/metrics"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/aaravmahajanofficial/sneaker-inventory/internal/services")

// observe opens a span for operation; the returned func ends it and
// counts the outcome.
func observe(ctx context.Context, operation string) (context.Context, func(error)) {

	ctx, span := tracer.Start(ctx, operation)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		metrics.RecordOperation(operation, err)
		span.End()
	}
}

var namePolicy = bluemonday.StrictPolicy()

// hasVisibleText reports whether name still shows any text once markup is
// ignored. Names are stored as typed; "<b></b>" or "  " count as empty.
func hasVisibleText(name string) bool {
	return strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(name))) != ""
}
