// Package metrics exposes the operational metrics of bigcalc: Prometheus
// collectors for evaluations and HTTP requests, and runtime memory
// snapshots used by the verbose report and the dashboard.
package metrics
