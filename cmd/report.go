package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/cspend/internal/cli"
	"github.com/theirongolddev/cspend/internal/ledger"
	"github.com/theirongolddev/cspend/internal/model"
	"github.com/theirongolddev/cspend/internal/render"
	"github.com/theirongolddev/cspend/internal/tracker"
)

var (
	reportAdds    []string
	reportDeletes []int
	reportFormat  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Replay expenses against a budget and print the result",
	Example: `  cspend report --budget 100 --add Coffee=30 --add Book=50
  cspend report -b 100 --add Rent=90 --delete 1 --format json`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringArrayVarP(&reportAdds, "add", "a", nil, "Expense as Name=Amount (repeatable, applied in order)")
	reportCmd.Flags().IntSliceVarP(&reportDeletes, "delete", "d", nil, "Delete the Nth listed expense after all adds (1-based, repeatable)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "table", "Output format: table, json, yaml")
	rootCmd.AddCommand(reportCmd)
}

type expenseArg struct {
	name   string
	amount string
}

// parseAddPairs splits Name=Amount arguments on the last '=' so names may
// contain one.
func parseAddPairs(pairs []string) ([]expenseArg, error) {
	out := make([]expenseArg, 0, len(pairs))
	for _, p := range pairs {
		i := strings.LastIndex(p, "=")
		if i < 0 {
			return nil, fmt.Errorf("--add %q: want Name=Amount", p)
		}
		out = append(out, expenseArg{name: p[:i], amount: p[i+1:]})
	}
	return out, nil
}

// replayResult is the outcome of running a scripted session.
type replayResult struct {
	Report model.Report
	Alerts []model.Alert
}

// replay drives a tracker through the given actions. Each action's alerts are
// collected and then expired before the next one runs.
func replay(budget string, adds []expenseArg, deletes []int, log zerolog.Logger) (replayResult, error) {
	surface := render.NewSurface()
	sched := &render.ManualScheduler{}
	tr := tracker.New(render.NewRenderer(surface, sched),
		tracker.WithIDSource(&ledger.Counter{}),
		tracker.WithLogger(log),
	)

	if err := tr.Start(budget); err != nil {
		return replayResult{}, fmt.Errorf("budget %q: %w", budget, err)
	}

	var res replayResult
	collect := func() {
		res.Alerts = append(res.Alerts, surface.Alerts()...)
		sched.Advance(render.AlertDuration)
	}

	for _, e := range adds {
		err := tr.Submit(e.name, e.amount)
		if errors.Is(err, tracker.ErrSubmissionLocked) {
			log.Warn().Str("name", e.name).Msg("skipped: submission locked")
		}
		collect()
	}

	for _, n := range deletes {
		expenses := tr.Expenses()
		if n < 1 || n > len(expenses) {
			return replayResult{}, fmt.Errorf("--delete %d: only %s listed", n,
				cli.Pluralize(len(expenses), "expense", "expenses"))
		}
		tr.Delete(expenses[n-1].ID)
		collect()
	}

	res.Report = tr.Report()
	return res, nil
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log, closer, err := commandLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	budget := budgetInput(cfg)
	if budget == "" {
		return errors.New("no budget: pass --budget or set CSPEND_BUDGET")
	}
	adds, err := parseAddPairs(reportAdds)
	if err != nil {
		return err
	}

	res, err := replay(budget, adds, reportDeletes, log)
	if err != nil {
		return err
	}

	if err := writeReport(os.Stdout, res, reportFormat); err != nil {
		return err
	}

	if flagExport != "" {
		if err := archiveReport(flagExport, res.Report, log); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Session archived to %s\n", flagExport)
		}
	}
	return nil
}

type reportDoc struct {
	model.Report `yaml:",inline"`
	Alerts       []string `json:"alerts" yaml:"alerts"`
}

func writeReport(w io.Writer, res replayResult, format string) error {
	switch format {
	case "table", "":
		_, err := io.WriteString(w, renderReportTable(res))
		return err
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want table, json, or yaml)", format)
	}

	doc := reportDoc{Report: res.Report, Alerts: make([]string, len(res.Alerts))}
	for i, a := range res.Alerts {
		doc.Alerts[i] = a.Kind.String() + ": " + a.Message
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func renderReportTable(res replayResult) string {
	r := res.Report
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(cli.RenderTitle("EXPENSES"))
	b.WriteString("\n\n")

	for _, a := range res.Alerts {
		b.WriteString("  " + cli.RenderAlert(a) + "\n")
	}
	if len(res.Alerts) > 0 {
		b.WriteString("\n")
	}

	rows := make([][]string, 0, len(r.Expenses)+2)
	for i, e := range r.Expenses {
		rows = append(rows, []string{strconv.Itoa(i + 1) + ". " + e.Name, cli.FormatAmount(e.Amount)})
	}
	if len(r.Expenses) > 0 {
		rows = append(rows, []string{"---"})
	}
	rows = append(rows, []string{"Spent", cli.FormatAmount(r.Totals.Spent())})

	b.WriteString(cli.RenderTable(cli.Table{
		Headers: []string{"Expense", "Amount"},
		Rows:    rows,
	}))
	b.WriteString("\n\n")

	tier := model.ClassifyTier(r.Totals)
	b.WriteString(cli.RenderTotals(r.Totals, tier))
	b.WriteString("\n")
	if r.Locked {
		b.WriteString("  Submission locked: " + render.MsgBudgetExhausted + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
