package health_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/dirtrust/health"
)

func ExampleNewCheckerFunc() {
	checker := health.NewCheckerFunc("directory", func(ctx context.Context) health.Result {
		return health.Healthy("directory server reachable")
	})

	result := checker.Check(context.Background())
	fmt.Println(checker.Name(), "is", result.Status)
	// Output:
	// directory is healthy
}

func ExampleUnhealthy() {
	result := health.Unhealthy("directory server unreachable", fmt.Errorf("dial tcp: connection refused"))

	fmt.Println(result.Status)
	fmt.Println(result.Message)
	// Output:
	// unhealthy
	// directory server unreachable
}
