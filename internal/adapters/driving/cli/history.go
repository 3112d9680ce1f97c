package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int

	// configuredHistoryLimit is the history.limit setting, used when the
	// --limit flag is not given.
	configuredHistoryLimit int
)

// SetHistoryLimit sets the configured default for history listings.
func SetHistoryLimit(limit int) {
	configuredHistoryLimit = limit
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded validation runs",
	Long:  `Commands for the local history of netlist validation runs.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded validation runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the document text of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if submissionService == nil {
		return errors.New("history not configured")
	}

	limit := historyLimit
	if !cmd.Flags().Changed("limit") && configuredHistoryLimit > 0 {
		limit = configuredHistoryLimit
	}

	submissions, err := submissionService.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(submissions) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	for i := range submissions {
		sub := &submissions[i]

		verdict := "?"
		if sub.Result != nil {
			if sub.Result.IsValid {
				verdict = "valid"
			} else {
				verdict = fmt.Sprintf("%d error(s)", len(sub.Result.Errors))
			}
		}

		name := sub.Filename
		if name == "" {
			name = "(editor)"
		}

		cmd.Printf("  %s  %s  %-20s %s\n",
			sub.ID, sub.SubmittedAt.Format("2006-01-02 15:04"), name, verdict)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if submissionService == nil {
		return errors.New("history not configured")
	}

	submission, err := submissionService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting run %s: %w", args[0], err)
	}

	cmd.Print(submission.RawText)
	if len(submission.RawText) > 0 && submission.RawText[len(submission.RawText)-1] != '\n' {
		cmd.Println()
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if submissionService == nil {
		return errors.New("history not configured")
	}

	if err := submissionService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting run %s: %w", args[0], err)
	}

	cmd.Printf("Deleted %s.\n", args[0])
	return nil
}
