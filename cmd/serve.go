package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"whatsapp-crm/internal/gate"
	"whatsapp-crm/internal/identity"
	"whatsapp-crm/internal/repository"
	"whatsapp-crm/internal/transport/http/middleware"
	"whatsapp-crm/internal/transport/http/server/handlers-fiber"
	"whatsapp-crm/internal/usecase"
	"whatsapp-crm/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		return fmt.Errorf("repository initialization: %w", err)
	}
	if err := repo.OnStart(ctx); err != nil {
		return fmt.Errorf("repository start: %w", err)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, repo, timeout, domain.Settings{
		CountryCode: cfg.Onboarding.CountryCode,
		Country:     cfg.Onboarding.Country,
		RecentLeads: cfg.Dashboard.RecentLeads,
	})

	verifier := identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience, nil)
	authClient := identity.NewClient(cfg.Auth.URL, cfg.Auth.AnonKey, cfg.Auth.Provider, nil)
	g := gate.New(verifier, uc, log)

	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	h := handlers_fiber.NewHandler(log, ctx, uc, g, authClient, handlers_fiber.Options{
		AccessCookie:    cfg.Auth.AccessCookie,
		RefreshCookie:   cfg.Auth.RefreshCookie,
		VerifierCookie:  cfg.Auth.VerifierCookie,
		CookieSecure:    cfg.Auth.CookieSecure,
		PublicURL:       cfg.Server.PublicURL,
		RefreshInterval: cfg.Dashboard.RefreshInterval,
		CountryCode:     cfg.Onboarding.CountryCode,
		Country:         cfg.Onboarding.Country,
	})
	handlers_fiber.RegisterHandlers(serv, h)

	go func() {
		log.Infow("http server listening", "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		log.Infow("server stopped")
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}
