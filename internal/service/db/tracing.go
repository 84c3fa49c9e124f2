// Package database provides a PostgreSQL-backed implementation of the storefront Service
package database

import (
	"context"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/otel"
	"github.com/harvestlink/harvestlink/internal/service"
)

const (
	// ServiceTracerName is the name used for the database service tracer
	ServiceTracerName = "github.com/harvestlink/harvestlink/service/db"
)

// Database semantic convention attributes
var (
	// DBSystemPostgres is the database system attribute for PostgreSQL
	DBSystemPostgres = semconv.DBSystemPostgreSQL
)

// expectedErrors are outcomes of normal use. They are recorded as span
// events but do not mark the span as failed.
var expectedErrors = []error{
	service.ErrNotFound,
	service.ErrEmailTaken,
	service.ErrSlugTaken,
	service.ErrInvalidCredentials,
	service.ErrAccountSuspended,
	service.ErrSamePassword,
	service.ErrInvalidPaymentMethod,
	service.ErrInvalidPaymentReference,
	service.ErrCartEmpty,
	service.ErrInsufficientStock,
	service.ErrProductUnavailable,
	service.ErrAddressRequired,
	service.ErrAddressLimit,
	service.ErrLastPrimaryAddress,
	service.ErrInvalidStatusTransition,
	service.ErrOrderNotCancellable,
	service.ErrSelfModification,
	service.ErrUserHasTransactions,
	service.ErrInvalidCursor,
}

// startSpan starts a new span for database operations.
// If the tracer is nil, it returns a no-op span from the context.
// All database spans include the db.system attribute.
func (s *dbService) startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	opts = append([]trace.SpanStartOption{trace.WithAttributes(DBSystemPostgres)}, opts...)
	return s.tracer.Start(ctx, name, opts...)
}

// recordError records err on the span. Validation and business errors leave
// the span status untouched.
func recordError(span trace.Span, err error) {
	if err == nil || span == nil {
		return
	}
	if service.IsValidationError(err) {
		span.RecordError(err)
		return
	}
	otel.RecordError(span, err, expectedErrors...)
}
