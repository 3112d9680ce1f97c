// Package cli provides the cobra command-line interface for netwiz.
// It is a driving adapter: commands call core services through the
// driving ports and never touch adapters directly, except for the
// one-shot validate path which talks to the rule engine port.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	validationService driven.ValidationService
	parserService     driven.NetlistParser
	sessionController driving.SessionController
	graphService      driving.GraphService
	decorationService driving.DecorationService
	submissionService driving.SubmissionService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "netwiz",
	Short: "Interactive netlist validation",
	Long: `NetWiz validates electronic netlist documents against a remote
rule engine and shows diagnostics as you edit.

Run without arguments to open the interactive editor, or use the
validate command for one-shot validation of a file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runEdit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string displayed by the version command.
func SetVersion(v string) {
	version = v
}

// SetValidationService injects the rule engine client.
func SetValidationService(svc driven.ValidationService) {
	validationService = svc
}

// SetParser injects the netlist parser.
func SetParser(p driven.NetlistParser) {
	parserService = p
}

// SetSessionController injects the validation session controller.
func SetSessionController(svc driving.SessionController) {
	sessionController = svc
}

// SetGraphService injects the graph derivation service.
func SetGraphService(svc driving.GraphService) {
	graphService = svc
}

// SetDecorationService injects the decoration service.
func SetDecorationService(svc driving.DecorationService) {
	decorationService = svc
}

// SetSubmissionService injects the submission history service.
// May be nil, which disables history features.
func SetSubmissionService(svc driving.SubmissionService) {
	submissionService = svc
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
