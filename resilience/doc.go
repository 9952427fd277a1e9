// Package resilience provides retry, circuit breaking, and timeout
// composition for directory server calls.
//
// The directory client itself never retries: retry policy belongs to the
// embedding system. This package is that system's building material. The
// patterns compose through an Executor and are applied to a transport with
// rpc.WithResilience:
//
//	retry := rpc.TransientRetry(resilience.RetryConfig{MaxAttempts: 3})
//	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{})
//
//	executor := resilience.NewExecutor(
//	    resilience.WithCircuitBreaker(cb),
//	    resilience.WithRetry(retry),
//	    resilience.WithTimeout(5*time.Second),
//	)
//	transport := rpc.WithResilience(rpc.NewHTTPTransport(cfg), executor)
//
// Retry predicates matter here: an authentication rejection is an
// authoritative answer and must never be replayed. rpc.TransientRetry wires
// the right predicate by default.
package resilience
