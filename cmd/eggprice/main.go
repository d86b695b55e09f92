package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yorrLorenz/eggprice"
	"github.com/yorrLorenz/eggprice/pkg/config"
	"github.com/yorrLorenz/eggprice/pkg/logger"
	"github.com/yorrLorenz/eggprice/pkg/storage"
)

// Command line flags
var (
	configPath string
)

// app bundles what every subcommand needs
type app struct {
	cfg       *config.Config
	log       logger.Logger
	history   storage.History
	estimator *eggprice.Estimator
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "eggprice",
		Short:         "Estimate egg prices between weekly observations",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Configuration file")

	rootCmd.AddCommand(
		buildEstimateCmd(),
		buildREPLCmd(),
		buildServeCmd(),
		buildTableCmd(),
		buildHistoryCmd(),
		buildSweepCmd(),
		buildInitCmd(),
	)

	return rootCmd
}

// newApp loads the configuration, the logger and, when withHistory is set,
// the history log the estimator records to.
func newApp(withHistory bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := eggprice.NewLogger(cfg.Logger(), os.Stderr)
	if err != nil {
		return nil, err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	options := []eggprice.Option{eggprice.WithLogger(log)}

	if withHistory {
		a.history, err = storage.Open(cfg.History.Driver, cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		options = append(options, eggprice.WithHistory(a.history))
	}

	a.estimator, err = eggprice.New(settings, options...)
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *app) Close() {
	if a.history == nil {
		return
	}
	if err := a.history.Close(); err != nil {
		a.log.WithError(err).Warn("Failed to close history")
	}
}

func buildInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configPath)
			return nil
		},
	}
}
