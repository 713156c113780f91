package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"speechcut/internal/api/server"
	"speechcut/internal/app"
	"speechcut/internal/config"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editing service HTTP server",
	Long: `Start the editing service HTTP server.

Serves PUT /source for uploads and PUT /generate for renders. Configuration
comes from the environment: storage and model roots, recognizer engine, and
server address.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		editService, err := app.InitializeEditService(cfg)
		if err != nil {
			return err
		}

		srv := server.NewServer(cfg.Server, editService, logger)
		if err := srv.Start(); err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
