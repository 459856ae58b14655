package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/panyam/symexpr/logger"
	"github.com/spf13/cobra"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	resultColor = color.New(color.FgGreen)
	labelColor  = color.New(color.FgCyan)
)

// NewRootCommand builds the symexpr command tree. Each call returns fresh
// commands with fresh flag state.
func NewRootCommand() *cobra.Command {
	var logLevel string
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "symexpr",
		Short: "symexpr evaluates, substitutes and prints arithmetic expression trees",
		Long: `symexpr works on a catalogue of expression trees built in code
(see "symexpr list"). Trees can be evaluated against variable values,
have variables replaced by other trees, and be printed in several forms.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("no-color") {
				cfg.NoColor = noColor
			}
			return cfg.Apply()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off (default: SYMEXPR_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output (default: SYMEXPR_NO_COLOR)")

	rootCmd.AddCommand(
		newEvalCmd(),
		newSubstCmd(),
		newPostfixCmd(),
		newShowCmd(),
		newListCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
	logger.Debug("command failed: %+v", err)
}
