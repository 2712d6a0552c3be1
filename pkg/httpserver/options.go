package httpserver

import (
	"fmt"
	"log/slog"
	"time"
)

// Option adjusts a Server before it starts. Invalid values panic when the
// option is built, so a bad flag fails at startup.
type Option func(*config)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty listen address")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	d = mustPositive("read timeout", d)
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout bounds a whole response, including the email delivery of
// a form submission and its datastar patch stream.
func WithWriteTimeout(d time.Duration) Option {
	d = mustPositive("write timeout", d)
	return func(c *config) { c.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	d = mustPositive("idle timeout", d)
	return func(c *config) { c.idleTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	d = mustPositive("shutdown timeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithMaxHeaderBytes caps request header size.
func WithMaxHeaderBytes(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("httpserver: max header bytes must be positive, got %d", n))
	}
	return func(c *config) { c.maxHeaderBytes = n }
}

// WithLogger sets the lifecycle logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func mustPositive(name string, d time.Duration) time.Duration {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver: %s must be positive, got %s", name, d))
	}
	return d
}
