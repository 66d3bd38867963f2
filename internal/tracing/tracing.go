// Package tracing wires optional OpenTelemetry export for the demo flows.
// Export is opt-in through MCP_OTLP_ENDPOINT; when unset the flows still
// create spans against the default no-op tracer.
package tracing

import (
	"context"
	"os"

	"github.com/ajitpratap0/mcp-sdk-go/pkg/observability"
)

// EnvEndpoint names the OTLP/HTTP collector endpoint, e.g. "localhost:4318".
const EnvEndpoint = "MCP_OTLP_ENDPOINT"

// Setup configures the global tracer provider when an OTLP endpoint is
// configured. The returned shutdown function flushes pending spans and is
// always safe to call.
func Setup(version string) (func(context.Context) error, error) {
	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	provider, err := observability.NewTracingProvider(observability.TracingConfig{
		ServiceName:    "mcp-toolkit-client",
		ServiceVersion: version,
		ExporterType:   observability.ExporterTypeOTLPHTTP,
		Endpoint:       endpoint,
		Insecure:       true,
		SampleRate:     1.0,
	})
	if err != nil {
		return nil, err
	}
	return provider.Shutdown, nil
}
