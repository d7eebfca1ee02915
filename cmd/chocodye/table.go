package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chocodye/internal/meal"
	"github.com/vovakirdan/chocodye/internal/search"
)

var tableCmd = &cobra.Command{
	Use:   "table <start>",
	Short: "Show the meals from one color to every color",
	Long: `Computes the cheapest meal from the start color to every color of the
catalog. Searches run concurrently; the workers setting bounds them.`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	tableCmd.Flags().Bool("json", false, "Print the table as JSON")
}

// tableRow is one JSON entry of the table command.
type tableRow struct {
	Target string     `json:"target"`
	Meal   *meal.Menu `json:"meal,omitempty"`
	Error  string     `json:"error,omitempty"`
}

func runTable(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}

	results, err := env.engine.SearchAll(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if asJSON {
		rows := make([]tableRow, len(results))
		for i, r := range results {
			rows[i].Target = r.Target.Name
			if r.Err != nil {
				rows[i].Error = r.Err.Error()
				continue
			}
			menu := meal.Format(env.catalog, r.Meal)
			rows[i].Meal = &menu
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	// Calculate column widths
	maxNameLen := 6 // "Target" header
	for _, r := range results {
		if len(r.Target.Name) > maxNameLen {
			maxNameLen = len(r.Target.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %7s  %s\n", maxNameLen, "Target", "Cost", "Meal")
	fmt.Fprintf(out, "  %-*s  %7s  %s\n", maxNameLen, "------", "----", "----")

	unreachable := 0
	for _, r := range results {
		name := env.palette.Chip(r.Target.RGB) + fmt.Sprintf("%-*s", maxNameLen, r.Target.Name)
		if errors.Is(r.Err, search.ErrNoRoute) {
			unreachable++
			fmt.Fprintf(out, "  %s  %7s  %s\n", name, "-", "no route")
			continue
		}
		fmt.Fprintf(out, "  %s  %7s  %s\n", name, r.Meal.Cost, summarize(r.Meal))
	}

	if unreachable > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d colors cannot be reached from %s.\n", unreachable, args[0])
	}
	return nil
}

// summarize renders steps compactly, e.g. "lemon x1, apple x5".
func summarize(m meal.Meal) string {
	if m.Empty() {
		return "-"
	}
	parts := make([]string, len(m.Steps))
	for i, s := range m.Steps {
		parts[i] = fmt.Sprintf("%s x%d", s.Fruit, s.Quantity)
	}
	return strings.Join(parts, ", ")
}
