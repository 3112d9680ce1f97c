package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

var (
	validateJSON   bool
	validateNoSave bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a netlist file",
	Long: `Performs one-shot validation of a netlist document against the
rule engine and prints the diagnostics.

Reads from stdin when the file argument is "-". The run is recorded in
the local history unless --no-save is given. The command exits non-zero
when the document is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the result as JSON")
	validateCmd.Flags().BoolVar(&validateNoSave, "no-save", false, "do not record the run in history")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	rawText, filename, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Raw text goes to the engine even when it does not parse locally,
	// so syntax-level diagnostics come back with locations.
	result, err := validationService.ValidateText(ctx, rawText)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if !validateNoSave && submissionService != nil {
		netlist, parseErr := parserService.Parse(rawText)
		if parseErr != nil {
			netlist = nil
		}
		if _, saveErr := submissionService.Record(ctx, rawText, filename, netlist, result); saveErr != nil {
			logger.Warn("could not record run: %v", saveErr)
		}
	}

	if validateJSON {
		if err := outputResultJSON(cmd, result); err != nil {
			return err
		}
	} else {
		outputResultText(cmd, result)
	}

	if !result.IsValid {
		return fmt.Errorf("netlist is invalid: %d error(s)", len(result.Errors))
	}
	return nil
}

// readDocument loads the document text from a file or stdin ("-").
func readDocument(cmd *cobra.Command, arg string) (text, filename string, err error) {
	if arg == "-" {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return "", "", fmt.Errorf("reading stdin: %w", readErr)
		}
		return string(data), "", nil
	}

	data, readErr := os.ReadFile(arg)
	if readErr != nil {
		return "", "", fmt.Errorf("reading %s: %w", arg, readErr)
	}
	return string(data), filepath.Base(arg), nil
}

func outputResultJSON(cmd *cobra.Command, result *domain.ValidationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultText(cmd *cobra.Command, result *domain.ValidationResult) {
	if result.IsValid {
		if len(result.Warnings) == 0 {
			cmd.Println("Valid.")
		} else {
			cmd.Printf("Valid with %d warning(s).\n", len(result.Warnings))
		}
	} else {
		cmd.Printf("Invalid: %d error(s), %d warning(s).\n", len(result.Errors), len(result.Warnings))
	}

	for _, diag := range result.Diagnostics() {
		marker := "E"
		if diag.Severity == domain.SeverityWarning {
			marker = "W"
		}

		location := ""
		if diag.Location != nil && diag.Location.Anchorable() {
			location = fmt.Sprintf("%d:%d ", diag.Location.StartLineNumber, diag.Location.StartLineCharacterNumber)
		}

		subject := ""
		if diag.ComponentID != "" {
			subject = " (" + diag.ComponentID + ")"
		} else if diag.NetID != "" {
			subject = " (" + diag.NetID + ")"
		}

		cmd.Printf("  %s %s[%s] %s%s\n", marker, location, diag.ErrorType.Name, diag.Message, subject)
	}
}
