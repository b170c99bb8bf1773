package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rl1809/weaselparts/internal/config"
)

var cfg config.Config

func main() {
	var (
		dbDriver  string
		dbPath    string
		redisAddr string
	)

	rootCmd := &cobra.Command{
		Use:          "weaselparts",
		Short:        "Warehouse scan stations and inventory service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("db-driver") {
				cfg.DBDriver = dbDriver
			}
			if flags.Changed("db-path") {
				cfg.SQLitePath = dbPath
			}
			if flags.Changed("redis") {
				cfg.RedisAddr = redisAddr
			}
			return cfg.Validate()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", config.DriverMySQL, "database driver (mysql or sqlite)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "weaselparts.db", "sqlite database file")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis address for guards and cache")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
