// Package environment carries the deployment environment (development,
// staging or production) through request contexts and log records.
//
// Parse turns the APP_ENV value into an Environment, Middleware stores it on
// each request and LoggerExtractor exposes it to the logger decorator:
//
//	env := environment.Parse(cfg.AppEnv)
//	r.Use(environment.Middleware(env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
