// Package otel holds small tracing helpers shared by the service layers.
package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for storefront business context.
const (
	AttrUserID        = attribute.Key("user.id")
	AttrUserRole      = attribute.Key("user.role")
	AttrProductID     = attribute.Key("product.id")
	AttrProductSlug   = attribute.Key("product.slug")
	AttrOrderID       = attribute.Key("order.id")
	AttrOrderNumber   = attribute.Key("order.number")
	AttrOrderStatus   = attribute.Key("order.status")
	AttrAddressID     = attribute.Key("address.id")
	AttrPaymentMethod = attribute.Key("payment.method")
	AttrPageSize      = attribute.Key("pagination.limit")
	AttrHasCursor     = attribute.Key("pagination.has_cursor")
	AttrResultCount   = attribute.Key("result.count")
)

// StartSpan starts a span on tracer, or returns the current span when tracer is nil.
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records err on span and marks it failed. Errors matching any of
// expected are recorded as events only and leave the span status untouched.
// The status description stays generic so query text never lands in it.
func RecordError(span trace.Span, err error, expected ...error) {
	if err == nil || span == nil {
		return
	}

	span.RecordError(err)
	for _, e := range expected {
		if errors.Is(err, e) {
			return
		}
	}
	span.SetStatus(codes.Error, "operation failed")
}
