// Package main is the catalog builder: it turns the three saved item listing
// pages into the catalog JSON the planner loads.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/OMD2Planner_Go/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "omd2catalog",
	Short: "Build and check the OMD2 item catalog",
	Long:  `omd2catalog scrapes the saved trap, weapon and trinket listing pages into items.json and validates catalog files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logger.LogLevelInfo
		if verbose {
			level = logger.LogLevelDebug
		}
		cfg := logger.DefaultConfig()
		cfg.Level = level
		cfg.ServiceName = "omd2catalog"
		logger.InitLoggerWithWriter(cfg, os.Stderr)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("omd2catalog failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
}
