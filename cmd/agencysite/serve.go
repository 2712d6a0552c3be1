package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/agencysite/modules/site"
	"github.com/dmitrymomot/agencysite/pkg/clientip"
	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/email"
	"github.com/dmitrymomot/agencysite/pkg/environment"
	"github.com/dmitrymomot/agencysite/pkg/httpserver"
	"github.com/dmitrymomot/agencysite/pkg/logger"
	"github.com/dmitrymomot/agencysite/pkg/registry"
	"github.com/dmitrymomot/agencysite/pkg/requestid"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return serve(cmd, cfg)
		},
	}
}

func serve(cmd *cobra.Command, cfg appConfig) error {
	ctx := cmd.Context()
	env := environment.Parse(cfg.Env)

	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithConfig(cfg.Log),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	reg, err := registry.FromConfig(cfg.Registry)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	sender, err := email.NewSender(cfg.Email, log)
	if err != nil {
		return fmt.Errorf("configure email: %w", err)
	}
	inbox := cfg.Email.InboxEmail
	if inbox == "" {
		inbox = reg.CompanyInfo().MainEmail
	}

	svc := contact.NewService(
		contact.NewSchemas(reg),
		contact.NewMailNotifier(sender, inbox, reg.CompanyInfo()),
		contact.WithLogger(log.With(logger.Component("contact"))),
	)

	web := site.New(reg, svc,
		site.WithLogger(log),
		site.WithEnvironment(env),
		site.WithServiceName(cfg.Name),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("httpserver"))))
	log.InfoContext(ctx, "starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.Int("services", len(reg.ListServices())),
		slog.Bool("postmark", cfg.Email.UsePostmark()),
	)
	return srv.Run(ctx, web.Handler())
}
