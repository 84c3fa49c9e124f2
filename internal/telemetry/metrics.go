package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/harvestlink/harvestlink/internal/service"
)

const (
	// CommerceMetricsMeterName is the name used for the storefront business meter
	CommerceMetricsMeterName = "github.com/harvestlink/harvestlink/commerce"

	// JobMetricsMeterName is the name used for the background job meter
	JobMetricsMeterName = "github.com/harvestlink/harvestlink/jobs"

	// InvalidPaymentMethodLabel buckets every unrecognised payment method
	InvalidPaymentMethodLabel = "invalid"
)

// CommerceMetrics counts checkouts and order values. All methods are nil-safe.
type CommerceMetrics struct {
	checkoutsTotal metric.Int64Counter
	orderValue     metric.Int64Histogram
	cancellations  metric.Int64Counter
}

// NewCommerceMetrics creates the commerce instruments. A nil provider yields nil metrics.
func NewCommerceMetrics(provider metric.MeterProvider) (*CommerceMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(CommerceMetricsMeterName)

	checkoutsTotal, err := meter.Int64Counter(
		"harvestlink_checkouts_total",
		metric.WithDescription("Checkout attempts by payment method and outcome"),
		metric.WithUnit("{checkout}"),
	)
	if err != nil {
		return nil, err
	}

	orderValue, err := meter.Int64Histogram(
		"harvestlink_order_value_centavos",
		metric.WithDescription("Grand total of placed orders in centavos"),
		metric.WithUnit("{centavo}"),
		metric.WithExplicitBucketBoundaries(10000, 25000, 50000, 100000, 250000, 500000, 1000000),
	)
	if err != nil {
		return nil, err
	}

	cancellations, err := meter.Int64Counter(
		"harvestlink_order_cancellations_total",
		metric.WithDescription("Orders cancelled by customers or administrators"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, err
	}

	return &CommerceMetrics{
		checkoutsTotal: checkoutsTotal,
		orderValue:     orderValue,
		cancellations:  cancellations,
	}, nil
}

// RecordCheckout records a checkout attempt; totalCents is only recorded on success
func (m *CommerceMetrics) RecordCheckout(ctx context.Context, paymentMethod string, totalCents int64, success bool) {
	if m == nil {
		return
	}

	method := attribute.String("payment_method", paymentMethodLabel(paymentMethod))
	m.checkoutsTotal.Add(ctx, 1, metric.WithAttributes(method, attribute.Bool("success", success)))

	if success {
		m.orderValue.Record(ctx, totalCents, metric.WithAttributes(method))
	}
}

// paymentMethodLabel maps request input onto cod, gcash, maya or "invalid".
func paymentMethodLabel(raw string) string {
	m, err := service.ParsePaymentMethod(raw)
	if err != nil {
		return InvalidPaymentMethodLabel
	}
	return string(m)
}

// RecordCancellation records a cancelled order; actor is "customer" or "admin"
func (m *CommerceMetrics) RecordCancellation(ctx context.Context, actor string) {
	if m == nil {
		return
	}
	m.cancellations.Add(ctx, 1, metric.WithAttributes(attribute.String("actor", actor)))
}

// JobMetrics holds instruments for periodic background jobs
type JobMetrics struct {
	runDuration metric.Float64Histogram
}

// NewJobMetrics creates the job instruments. A nil provider yields nil metrics.
func NewJobMetrics(provider metric.MeterProvider) (*JobMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(JobMetricsMeterName)

	runDuration, err := meter.Float64Histogram(
		"harvestlink_job_duration_seconds",
		metric.WithDescription("Duration of background job runs in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, err
	}

	return &JobMetrics{runDuration: runDuration}, nil
}

// RecordRun records one job execution
func (m *JobMetrics) RecordRun(ctx context.Context, job string, duration time.Duration, success bool) {
	if m == nil {
		return
	}

	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("job", job),
		attribute.Bool("success", success),
	))
}
