// Package cli implements the docseed command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpggio/docseed/internal/config"
	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

// app carries state shared by subcommands once the root pre-run has resolved it.
type app struct {
	configFile string
	storeType  string
	storeURI   string
	database   string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

// Execute runs the root command, canceling on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the docseed command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "docseed",
		Short: "Seed a document store with fixture clients, projects and counters",
		Long: `docseed writes a fixed set of clients, projects and id counters into an
empty document store (SQLite or MongoDB) and can check the result afterwards.

Configuration:
  1. defaults (sqlite store at ./docseed.db)
  2. --config flag or DOCSEED_CONFIG_PATH (YAML)
  3. DOCSEED_* environment variables
  4. --store, --uri, --database, --log-level flags

Examples:
  docseed seed                                   Seed ./docseed.db
  docseed seed --store mongodb --uri mongodb://localhost:27017
  docseed verify                                 Check the store against the fixture
  docseed next-id projects                       Allocate the next project id`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "fixtures" {
				return nil
			}
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "Path to YAML config file")
	flags.StringVar(&a.storeType, "store", "", "Store type: sqlite or mongodb")
	flags.StringVar(&a.storeURI, "uri", "", "SQLite file path or MongoDB connection string")
	flags.StringVar(&a.database, "database", "", "MongoDB database name")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newFixturesCmd())
	root.AddCommand(newNextIDCmd(a))
	root.AddCommand(newMCPCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Type = a.storeType
	}
	if flags.Changed("uri") {
		cfg.Store.URI = a.storeURI
	}
	if flags.Changed("database") {
		cfg.Store.Database = a.database
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	a.cfg = cfg
	// stdout carries command output and MCP JSON-RPC, so logs go to stderr.
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	return nil
}
