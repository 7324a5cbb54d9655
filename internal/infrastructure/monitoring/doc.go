/*
Package monitoring provides Prometheus metrics for the statcalc service.

# Features

- HTTP request metrics (latency, throughput)
- Service tool metrics (duration, errors)
- Quadrature partition sizes per rule

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	timer := monitoring.NewTimer(metrics, "math", "math.integrate")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
