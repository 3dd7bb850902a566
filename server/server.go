// Package server binds the HTTP listener.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"syscall"
)

// Listen binds host:port, moving on to port+1 while the address is in use.
// At most attempts ports are tried; any other bind error is returned at once.
func Listen(host string, port, attempts int, logger *slog.Logger) (net.Listener, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		addr := net.JoinHostPort(host, strconv.Itoa(port+i))
		ln, err := net.Listen("tcp", addr)
		if err == nil {
			return ln, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
		}
		logger.Warn("port busy, trying next", "port", port+i, "next", port+i+1)
		lastErr = err
	}
	return nil, fmt.Errorf("no free port in %d..%d: %w", port, port+attempts-1, lastErr)
}
