// Package logger builds *slog.Logger instances for the checklist tools with
// functional options, helper attribute constructors and injection of values
// stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with LogHandlerDecorator, which runs every registered
// ContextExtractor before delegating a record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "checklist"),
//	    logger.WithLevel(cfg.LogLevel),
//	)
//	log.Debug("commit evaluated",
//	    logger.Field("B"),
//	    logger.Verdict(commit.Verdict()),
//	)
//
// Attribute helpers (Field, Value, Kind, Verdict, Signature, Rules, Error)
// keep key names consistent between packages. Error and Errors return an
// empty attribute for nil errors, so they can be passed unconditionally.
package logger
