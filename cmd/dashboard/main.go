package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/config"
	"github.com/mentorbridge/dashboard/internal/logger"
	"github.com/mentorbridge/dashboard/internal/server"
	"github.com/mentorbridge/dashboard/internal/session"
	"github.com/mentorbridge/dashboard/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "MentorBridge dashboard server",
		Long:  `Web dashboard for the MentorBridge mentorship platform`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env is optional - real deployments set the environment directly
	_ = godotenv.Load()

	cfg, corsConfigs, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	serverLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverLogger.Info("starting dashboard server",
		slog.String("version", version.Get().Version),
		slog.String("environment", cfg.Environment),
		slog.String("api_base_url", cfg.APIBaseURL),
	)

	sessionStore := session.NewStore()
	apiClient := api.NewClient(cfg.APIBaseURL, sessionStore, api.WithTimeout(cfg.APITimeout))
	authService := session.NewAuthService(apiClient, cfg.Environment)

	srv := server.NewServer(cfg, corsConfigs, serverLogger, apiClient, authService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		serverLogger.Error("dashboard server error", slog.String("error", err.Error()))
		return err
	}

	serverLogger.Info("dashboard server shutdown complete")
	return nil
}
