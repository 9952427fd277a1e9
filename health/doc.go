// Package health provides health checking primitives.
//
// A Checker is any component that can report its health status. The
// directory package implements one that probes directory server
// reachability:
//
//	check := directory.NewChecker(client)
//	result := check.Check(ctx)
//	if result.Status == health.StatusUnhealthy {
//	    log.Printf("directory down: %s", result.Message)
//	}
package health
