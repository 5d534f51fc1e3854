// Package metrics defines the broker time series and the providers that
// supply them.
package metrics
