package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cspend/internal/cli"
	"github.com/theirongolddev/cspend/internal/store"
)

var (
	historyLimit   int
	historySession string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List sessions from the export archive",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum sessions to show (0 for all)")
	historyCmd.Flags().StringVarP(&historySession, "session", "s", "", "Show the expenses of one session")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	path := exportPath(cfg)
	if path == "" {
		return errors.New("no export archive configured: pass --export or run `cspend setup`")
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("\n  No archive at %s yet.\n\n", path)
		return nil
	}

	log, closer, err := commandLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	archive, err := store.Open(path, log)
	if err != nil {
		return err
	}
	defer archive.Close()

	if historySession != "" {
		return printSessionExpenses(archive, historySession)
	}

	sessions, err := archive.List(historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("\n  No archived sessions.")
		return nil
	}

	total, err := archive.Count()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		status := s.Tier
		if s.Locked {
			status += " (locked)"
		}
		rows = append(rows, []string{
			shortID(s.SessionID),
			cli.FormatAgo(s.Ended()),
			cli.FormatAmount(s.Total),
			cli.FormatAmount(s.Remaining),
			cli.FormatNumber(int64(s.ExpenseCount)),
			status,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SESSIONS  %d of %d", len(sessions), total)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Session", "Ended", "Budget", "Remaining", "Expenses", "Status"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func printSessionExpenses(archive *store.Archive, sessionID string) error {
	expenses, err := archive.Expenses(sessionID)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Printf("\n  No expenses archived for session %s.\n\n", sessionID)
		return nil
	}

	rows := make([][]string, 0, len(expenses))
	for i, e := range expenses {
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, e.Name),
			cli.FormatAmount(e.Amount),
			cli.FormatAgo(e.CreatedAt),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SESSION " + shortID(sessionID)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Expense", "Amount", "Added"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
