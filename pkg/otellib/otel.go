package otellib

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/config"
)

// InitOtel creates a tracer provider exporting to Jaeger. Returns a
// noop provider when tracing is disabled in the config.
func InitOtel(serviceName, environment string, conf config.JaegerConfig) (trace.TracerProvider, func()) {
	if !conf.Enabled {
		return trace.NewNoopTracerProvider(), func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(conf.Endpoint),
	))
	if err != nil {
		panic(err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("environment", environment),
		)),
	)

	shutdown := func() {
		_ = provider.Shutdown(context.Background())
	}
	return provider, shutdown
}
