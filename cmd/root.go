package main

import (
	"fmt"

	"github.com/msumanth960/epaper/internal/config"
	"github.com/msumanth960/epaper/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	log      *logrus.Logger
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "epaper",
	Short:         "Regional e-paper and incident reporting portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Загрузка конфигурации
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			logrus.Errorf("Failed to load config: %v", err)
			return fmt.Errorf("loading config: %w", err)
		}

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}

		// Инициализация логгера
		log = logger.New(cfg.LogLevel, nil)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (overrides LOG_LEVEL)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}
