package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fundflow/backend/internal/config"
	"github.com/fundflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config

	rootCmd = &cobra.Command{
		Use:               "fundflow",
		Short:             "Budget periods and summaries for Fundflow",
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
		RunE:              runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML). Environment variables and .env override defaults")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(periodsCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	setupLogging(cfg)
	return nil
}

// setupLogging configures the global logger. If no log format is set, it
// defaults to human readable for development and JSON for release.
func setupLogging(cfg config.Config) {
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == config.LogFormatHuman {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Validated before
	if level, err := zerolog.ParseLevel(cfg.LogLevel); cfg.LogLevel != "" && err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connect opens and migrates the configured database.
func connect(cfg config.Config) error {
	if cfg.UsePostgres() {
		log.Debug().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("using PostgreSQL")
		return models.ConnectPostgres(models.PostgresDSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName))
	}

	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	log.Debug().Str("path", cfg.DBPath).Msg("using SQLite")
	return models.Connect(cfg.DBPath)
}
