// Package httpserver runs the site's HTTP handler with sane timeouts and a
// context-driven graceful shutdown, and provides liveness/readiness probe
// handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	err := srv.Run(ctx, router)
package httpserver
