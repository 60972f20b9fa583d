// Package telemetry wires OpenTelemetry tracing: a global W3C trace context
// propagator, an optional OTLP/gRPC exporter and a log extractor that tags
// records with the active trace.
package telemetry
