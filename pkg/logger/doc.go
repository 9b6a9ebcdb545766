// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers so that keys stay consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "rulecheck"),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id, ok := ctx.Value(runIDKey{}).(string)
//			return logger.RunID(id), ok
//		}),
//	)
//
//	log.InfoContext(ctx, "checks evaluated",
//		logger.Count(len(checks)),
//		logger.Duration(time.Since(start)),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
