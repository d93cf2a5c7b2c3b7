// Package metric manages Prometheus metric registration and exposure for
// ring buffer instances.
//
// # Overview
//
// The package wraps a dedicated prometheus.Registry so that buffer metrics
// never collide with an application's default registry. Each metric is
// tracked under a "buffer.metric" key, duplicate registrations are rejected
// with classified errors, and Go runtime collectors are included by default.
//
// # Quick Start
//
//	registry := metric.NewRegistry()
//
//	buf, err := ringbuffer.New[int](1024,
//	    ringbuffer.WithMetrics[int](registry, "ingest"),
//	)
//
// Optionally expose the registry over HTTP:
//
//	server := metric.NewServer(9090, "/metrics", registry)
//	go server.Start()
//	defer server.Stop()
//
// The server also serves /health for liveness probes.
package metric
