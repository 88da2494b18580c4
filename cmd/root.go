package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
)

var (
	configFile string
	verbose    bool

	// cfg is resolved before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Beam analysis and reinforced concrete design tool",
	Long: `gobeam - Go Beam Analysis and Reinforced Concrete Designer

A CLI tool for the analysis of single-span beams and the design of
rectangular reinforced concrete sections based on ACI 318-19.

This tool helps structural engineers perform:
  - Support reactions, shear, moment and torsion diagrams
  - Finite element deflections and cross-section stresses
  - Flexural design (singly and doubly reinforced)
  - Shear and torsion design with stirrup spacing
  - Capacity checks of a given reinforcement layout`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = c

		level := cfg.LogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		if cfg.Source != "" {
			slog.Debug("configuration loaded", "file", cfg.Source)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintf(w, "  ║   gobeam v%-48s║\n", version.Version)
		fmt.Fprintln(w, "  ║   Go Beam Analysis and Reinforced Concrete Designer       ║")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Features:")
		fmt.Fprintln(w, "    • Reactions, internal forces and FEM deflections")
		fmt.Fprintln(w, "    • Diagrams in the terminal or as png, svg and pdf")
		fmt.Fprintln(w, "    • ACI 318-19 flexure, shear and torsion design")
		fmt.Fprintln(w, "    • Capacity checks and factored load combinations")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Use 'gobeam --help' to see available commands.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(w, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(w)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (default ./gobeam.yaml or ~/.config/gobeam/gobeam.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
