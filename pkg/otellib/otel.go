package otellib

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/config"
)

// InitOtel configures a tracer provider exporting to the configured jaeger
// collector. The returned shutdown must run before process exit to flush
// pending spans.
func InitOtel(
	serviceName string, environment string, conf config.JaegerConfig,
) (*tracesdk.TracerProvider, func()) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(conf.Endpoint),
	))
	if err != nil {
		panic(err)
	}

	provider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("environment", environment),
		)),
	)

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := provider.Shutdown(ctx)
		if err != nil {
			zap.L().Error("shutdown tracer provider", zap.Error(err))
		}
	}
	return provider, shutdown
}
