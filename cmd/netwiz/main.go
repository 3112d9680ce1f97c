// Command netwiz is an interactive netlist validation client. It wires
// the driven adapters (rule engine client, parser, config, history
// store) into the core services and hands them to the CLI adapter.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driven/parser"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driven/validation/netwizapi"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/netwiz-cli/internal/core/services"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := file.LoadSettings(configStore)

	netlistParser := parser.NewJSONParser()
	validator := netwizapi.NewClient(netwizapi.Config{
		BaseURL: settings.ServerBaseURL,
		Timeout: settings.ServerTimeout,
	})

	session := services.NewSessionController(netlistParser, validator, services.SessionConfig{
		Debounce: settings.Debounce,
	})

	cli.SetVersion(version)
	cli.SetValidationService(validator)
	cli.SetParser(netlistParser)
	cli.SetSessionController(session)
	cli.SetGraphService(services.NewGraphDeriver())
	cli.SetDecorationService(services.NewLocationIndex())

	cli.SetHistoryLimit(settings.HistoryLimit)
	if settings.HistoryEnabled {
		store, storeErr := sqlite.NewStore("")
		if storeErr != nil {
			// History is optional: run without it rather than fail.
			logger.Warn("history store unavailable: %v", storeErr)
		} else {
			defer store.Close() //nolint:errcheck
			cli.SetSubmissionService(services.NewSubmissionService(store.SubmissionStore()))
		}
	}

	return cli.Execute()
}
