// Package logger builds the site's slog loggers.
//
// New takes functional options; WithEnvironment picks text/debug output for
// development and JSON/info output elsewhere, WithConfig applies LOG_LEVEL
// and LOG_FORMAT, and WithContextExtractors registers callbacks that copy
// request-scoped values (request id, environment) into every record through
// LogHandlerDecorator.
//
// The attribute helpers (Form, Fields, SubmissionID, Error, ...) keep key
// names consistent. Fields logs the names of invalid form fields only; the
// submitted values never reach the logs.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "agencysite"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "contact submission accepted", logger.Form("contact"))
package logger
