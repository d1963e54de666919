package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "admtool",
		Short:         "Audio Definition Model metadata tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.startProfiles(); err != nil {
				return err
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.flags.config, "config", "c", "", "Configuration file path")
	flags.StringVar(&ctx.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&ctx.flags.logFormat, "log-format", "", "Log format (auto, console, json)")
	flags.BoolVar(&ctx.flags.recursive, "recursive", false, "Search for audioFormatExtended at any depth")
	flags.BoolVar(&ctx.flags.commonDefinitions, "common-definitions", false, "Preload the common definitions")
	flags.StringVar(&ctx.flags.cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	flags.StringVar(&ctx.flags.memProfile, "memprofile", "", "Write memory profile to file")

	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newDumpCommand(ctx))
	rootCmd.AddCommand(newIndexCommand(ctx))
	rootCmd.AddCommand(newFindCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
