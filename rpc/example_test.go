package rpc_test

import (
	"fmt"
	"time"

	"github.com/jonwraymond/dirtrust/resilience"
	"github.com/jonwraymond/dirtrust/rpc"
)

func ExampleNewHTTPTransport() {
	transport := rpc.NewHTTPTransport(rpc.HTTPConfig{
		BaseURL: "https://directory.example.com",
		Timeout: 5 * time.Second,
	})

	// Add retry for transient faults only; rejections pass through untouched.
	resilient := rpc.WithResilience(transport, resilience.NewExecutor(
		resilience.WithRetry(rpc.TransientRetry(resilience.RetryConfig{MaxAttempts: 3})),
		resilience.WithTimeout(10*time.Second),
	))

	_ = resilient
	fmt.Println("transport ready")
	// Output:
	// transport ready
}

func ExampleRegistry() {
	transport, err := rpc.DefaultRegistry.Create("http", map[string]any{
		"base_url": "https://directory.example.com",
		"timeout":  "5s",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = transport
	fmt.Println(rpc.DefaultRegistry.List())
	// Output:
	// [http]
}
