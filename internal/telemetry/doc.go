// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for compilation.
//
// Metrics implements the lowering and compilation observer interfaces, so
// a single value can be handed to compile.New:
//
//	reg := prometheus.NewRegistry()
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	c, err := compile.New(opts, compile.WithObserver(m), compile.WithTracer(telemetry.Tracer()))
//
// Tracing uses the global OpenTelemetry tracer provider unless one is
// passed with WithTracerProvider.
package telemetry
