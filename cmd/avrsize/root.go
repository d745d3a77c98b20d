package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/avrsize/internal/config"
)

// NewRootCmd creates the root command for avrsize.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avrsize",
		Short: "Report program and dynamic memory usage of an AVR ELF binary",
		Long: `avrsize reads a compiled ELF binary and reports how much of the program
memory (flash) and dynamic memory (RAM) budgets it uses.

Loadable segments that are readable and executable count as program memory.
Loadable segments that are readable and writable count as dynamic memory.

By default an exceeded budget is only reported. Use --error to make avrsize
exit with status 1 when either budget is exceeded.

Examples:
  # Check against the Arduino Uno budgets
  avrsize -f build/firmware.elf

  # Fail the build when the sketch does not fit an ATmega168
  avrsize -f build/firmware.elf -e -p 14336 -d 1024

  # Write a Markdown summary for CI
  avrsize -f build/firmware.elf -m -o size-report.md`,
		Version:       getVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}
	cmd.SetVersionTemplate(versionTemplate())

	cmd.Flags().StringP("elf-file", "f", "", "ELF binary to analyse (required)")
	cmd.Flags().BoolP("error", "e", false,
		"Exit with status 1 when a memory budget is exceeded")
	cmd.Flags().Uint64P("max-program-memory", "p", config.DefaultMaxProgramMemory,
		"Program memory (flash) budget in bytes")
	cmd.Flags().Uint64P("max-dynamic-memory", "d", config.DefaultMaxDynamicMemory,
		"Dynamic memory (RAM) budget in bytes")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .avrsize.yaml, XDG config dir, or ~/.avrsize.yaml)")
	cmd.Flags().BoolP("json", "j", false, "Output the report in JSON format")
	cmd.Flags().BoolP("markdown", "m", false, "Output the report in Markdown format")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.Flags().String("init-config", "", "Write a configuration file template to the given path and exit")
	cmd.Flags().Bool("force", false, "Overwrite an existing file when used with --init-config")

	return cmd
}

// runRootCmd executes the root command.
// The optional positional argument is accepted for compatibility with build
// scripts that pass padding and is otherwise ignored.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	initPath, err := cmd.Flags().GetString("init-config")
	if err != nil {
		return err
	}
	if initPath != "" {
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}
		return writeConfigTemplate(cmd.OutOrStdout(), initPath, force)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)
	logger.Debug("configuration resolved",
		"file", cfg.ELFFile,
		"config", cfg.ConfigFilePath,
		"maxProgramMemory", cfg.MaxProgramMemory,
		"maxDynamicMemory", cfg.MaxDynamicMemory,
		"error", cfg.ErrorOnOverflow,
	)

	return runCheck(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
