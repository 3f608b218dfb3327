package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/ferro/internal/domain"
)

// HistoryCmd prints synced history rows for one log.
type HistoryCmd struct {
	Domain string `arg:"" help:"Log to show" enum:"sets,runs,nutrition,body" default:"sets"`
	Limit  int    `help:"Most recent rows to show (0 = all)" default:"20"`
}

var logDomains = map[string]domain.LogDomain{
	"sets":      domain.LogSets,
	"runs":      domain.LogRuns,
	"nutrition": domain.LogNutrition,
	"body":      domain.LogBody,
}

var logHeaders = map[domain.LogDomain][]string{
	domain.LogSets:      {"ROW ID", "TIMESTAMP", "ATHLETE", "DAY", "EXERCISE", "SET", "TARGET", "WEIGHT", "REPS"},
	domain.LogRuns:      {"ROW ID", "TIMESTAMP", "ATHLETE", "KM", "TIME", "EFFORT", "NOTES", "PACE"},
	domain.LogNutrition: {"ROW ID", "DATE", "ATHLETE", "PROTEIN", "WATER", "VEG", "STEPS", "COUNT", "ENERGY", "NOTES", "TIMESTAMP"},
	domain.LogBody:      {"ROW ID", "DATE", "ATHLETE", "WEIGHT", "WAIST", "HIPS", "NOTES", "TIMESTAMP"},
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	d := logDomains[h.Domain]
	rows, err := cli.Container.History.LoadLog(context.Background(), d)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Printf("No %s rows synced yet.\n", h.Domain)
		return nil
	}

	if h.Limit > 0 && len(rows) > h.Limit {
		rows = rows[len(rows)-h.Limit:]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printTabRow(w, logHeaders[d])
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%v", v)
		}
		printTabRow(w, cells)
	}
	return w.Flush()
}

func printTabRow(w *tabwriter.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
