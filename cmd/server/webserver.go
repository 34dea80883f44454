package main

import (
	"fmt"
	"net/http"
	"time"
)

// webServer wraps the render handler in an http.Server listening on port.
// Only the header read is bounded; renders may run long.
func webServer(port int, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
