package playerapi

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type playerAPIMetricsCollection struct {
	requestCount metric.Int64Counter
}

var metrics playerAPIMetricsCollection

func init() {
	const name = "roster/playerapi"
	meter := otel.Meter(name)

	requestCount, err := meter.Int64Counter(
		"playerapi/request_count",
		metric.WithDescription("Requests sent to the roster API"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create request count metric: %w", err))
	}

	metrics = playerAPIMetricsCollection{
		requestCount: requestCount,
	}
}

// statusCode -1 means the request did not complete
func recordRequest(ctx context.Context, operation string, method string, statusCode int) {
	status := "error"
	if statusCode >= 0 {
		status = strconv.Itoa(statusCode)
	}

	metrics.requestCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("method", method),
		attribute.String("status", status),
	))
}
