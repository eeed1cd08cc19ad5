// Package logger provides a small factory around log/slog plus attribute
// helpers shared across the SDK.
//
//	log := logger.New(
//		logger.WithTextFormatter(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("app", "demo")),
//	)
//
//	log.Error("token delete failed", logger.Error(err), logger.Component("auth"))
package logger
