/*
Package observability turns machine lifecycle events into Prometheus metrics.

Metrics exposes its collectors as domain.LifecycleHooks, so it plugs into the
runtime the same way debug logging does:

	metrics, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	w := countdown.New(store, view, countdown.WithLifecycleHooks(metrics.Hooks()))
*/
package observability
