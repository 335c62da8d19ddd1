// Package fetch provides the polite HTTP client used to retrieve roster and
// bio pages: a shared rate limiter across all workers, a browser-like
// User-Agent, and exponential-backoff retries on transient failures.
package fetch
