package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keagan/railcut/internal/api"
	"github.com/keagan/railcut/internal/config"
	"github.com/keagan/railcut/internal/gui"
	"github.com/keagan/railcut/internal/logging"
	"github.com/keagan/railcut/internal/providers"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "railcut",
	Short: "railcut - timeline clip editor and media proxy",
	Long:  "A non-linear video editor shell: an interactive clip timeline plus thin proxy routes for stock media, sound effects, uploads, and transcription.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging
		logging.Init(verbose)

		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Store config in context
		ctx := config.WithConfig(cmd.Context(), cfg)
		cmd.SetContext(ctx)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the timeline editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())
		gui.RunEditor(cfg, log.Logger)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the media proxy server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		server := api.NewServer(api.ServerConfig{
			Port:      cfg.Server.Port,
			AssetsDir: cfg.Server.AssetsDir,
			Stock:     providers.NewPexelsClient(cfg.Providers.Pexels, log.Logger),
			Sounds:    providers.NewSFXClient(cfg.Providers.SFX, log.Logger),
			Presigner: providers.NewPresigner(cfg.Providers.Storage),
			Scribe:    providers.NewTranscribeClient(cfg.Providers.Transcribe, log.Logger),
			Expiry:    time.Duration(cfg.Providers.Storage.ExpirySec) * time.Second,
			Logger:    log.Logger,
		})

		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-stop:
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Config management commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())
		path := cfgFile
		if path == "" {
			path = "./config.yaml"
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("config written")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
