// Package logging provides structured logging for larek.
//
// It wraps Go's log/slog to write JSON lines. The terminal UI owns the
// screen, so the shop command logs to {dir}/larek.log; the demo server logs
// to stderr.
//
// # Usage
//
//	logger, err := logging.NewLogger(dir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	storeLog := logger.WithComponent("store")
//	storeLog.Info("basket changed", "count", 2)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"basket changed","component":"store","count":2}
//
// Child loggers created via With* share the underlying writer and are safe
// for concurrent use. Use [NopLogger] when logging is disabled.
package logging
