package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"culler/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}
			if err := config.WriteSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "state_dir:        %s\n", cfg.Paths.StateDir)
			fmt.Fprintf(out, "backup_file:      %s\n", cfg.Paths.BackupFile)
			ledgerPath := cfg.LedgerPath()
			if ledgerPath == "" {
				ledgerPath = "(disabled)"
			}
			fmt.Fprintf(out, "ledger:           %s\n", ledgerPath)
			fmt.Fprintf(out, "extensions:       %s\n", strings.Join(cfg.Scan.Extensions, ", "))
			fmt.Fprintf(out, "extras_folders:   %s\n", strings.Join(cfg.Scan.ExtrasFolders, ", "))
			fmt.Fprintf(out, "min_size_mb:      %.0f\n", cfg.Scan.MinSizeMB)
			fmt.Fprintf(out, "fuzzy_threshold:  %.2f\n", cfg.Match.FuzzyThreshold)
			fmt.Fprintf(out, "prefer_smaller:   %t\n", cfg.Quality.PreferSmaller)
			fmt.Fprintf(out, "log format/level: %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
			return nil
		},
	}
}
