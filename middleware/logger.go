package middleware

import (
	"time"
)

// ActionLogger wraps a menu action handler with a timing log line.
func ActionLogger(name string, handler func() error) error {
	start := time.Now()
	err := handler()
	latency := time.Since(start)
	outcome := "ok"
	if err != nil {
		outcome = err.Error()
	}
	// Simple log to stdout — replace with logger as needed
	println("action", name, outcome, latency.String())
	return err
}
