// Package cli implements the cobra-based CLI for motorpool.
//
// The binary runs exactly one demonstration mode per invocation, chosen
// by a single optional positional argument (basics, inheritance, fleet;
// default basics). Each mode lives in its own file within this package.
// This file defines the root command, flag handling, and the error/exit
// plumbing shared by all modes.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/motorpool/internal/model"
)

// Global flag variables bound to persistent flags on the root command.
var (
	// onFull selects the at-capacity boarding policy for every vehicle
	// the demos construct. Valid values: "reject" (default), "skip".
	onFull string

	// rosterPath optionally points the fleet mode at a roster file
	// (JSONC or YAML) instead of the built-in demo fleet.
	rosterPath string

	// noColor disables ANSI colors in all output.
	noColor bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// demoModes lists the recognized mode selectors in display order.
var demoModes = []string{"basics", "inheritance", "fleet"}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Unlike a multi-command tool, the root command itself runs the selected
// demonstration: the mode is an optional positional argument rather than
// a subcommand, so an unrecognized mode prints a friendly message
// instead of a usage error.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "motorpool [mode]",
		Short: "Object model demo: vehicles, variants, and a polymorphic fleet",
		Long: `motorpool demonstrates a small object model: a capacity-bounded Vehicle,
Car and Bus variants that override its description, and a Fleet that
dispatches polymorphically over a mixed collection of them.

Modes:
  basics       attributes, methods, and capacity enforcement (default)
  inheritance  variant construction, overridden descriptions, group boarding
  fleet        a heterogeneous fleet, totals, and polymorphic dispatch`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them itself.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// At most one positional argument: the mode selector.
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args)
		},
	}

	// PersistentFlags so the flags survive a future split into
	// subcommands; today the root is the only command.
	rootCmd.PersistentFlags().StringVar(&onFull, "on-full", model.PolicyReject.String(),
		"Boarding policy when a vehicle is full: reject, skip")
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "",
		"Path to a roster file (.json/.jsonc/.yaml/.yml) for the fleet mode")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

// runDemo validates the shared flags and dispatches to the selected mode.
func runDemo(cmd *cobra.Command, args []string) error {
	// Step 1: Validate the --on-full flag value.
	policy, err := model.ParseFullPolicy(onFull)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid --on-full value %q: valid values are reject, skip", onFull), nil)
	}

	// Step 2: Apply the --no-color flag. The color package also honors
	// NO_COLOR and non-TTY detection on its own.
	if noColor {
		color.NoColor = true
	}

	// Step 3: Resolve the mode, defaulting to basics when omitted.
	mode := "basics"
	if len(args) == 1 {
		mode = args[0]
	}
	VerboseLog("Running mode %q with on-full policy %q", mode, policy)

	// Step 4: Dispatch. An unknown mode is not an error — the demo just
	// tells the user what it understands.
	out := cmd.OutOrStdout()
	switch mode {
	case "basics":
		return runBasics(out, policy)
	case "inheritance":
		return runInheritance(out, policy)
	case "fleet":
		return runFleet(out, policy, rosterPath)
	default:
		fmt.Fprintf(out, "unknown mode %q (valid modes: %s)\n", mode, strings.Join(demoModes, ", "))
		return nil
	}
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message to stderr.
// Format: "Error: <message>[: <detail>]".
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
