package main

import (
	"fmt"
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/interview-practice/internal/infrastructure/database"
	"github.com/johnquangdev/interview-practice/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Manage the interview session schema",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(migrate.Up)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(migrate.Down)
	},
}

func init() {
	rootCmd.AddCommand(upCmd, downCmd)
}

func run(direction migrate.MigrationDirection) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.CloseDB(db)

	log.Println("🔄 Applying embedded migrations...")
	n, err := database.Migrate(db, direction)
	if err != nil {
		return err
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
