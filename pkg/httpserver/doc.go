// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown tied to a context.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run returns once ctx is done and in-flight requests have drained, or the
// shutdown timeout has passed. HealthCheckHandler provides liveness and
// readiness endpoints.
package httpserver
