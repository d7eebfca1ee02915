package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chocodye/internal/catalog"
	"github.com/vovakirdan/chocodye/internal/meal"
)

var mealCmd = &cobra.Command{
	Use:   "meal <start> <target>",
	Short: "Show the cheapest meal between two colors",
	Long: `Computes the cheapest ordered sequence of fruit feedings that turns a
chocobo of the start color into the target color.

Examples:
  chocodye meal charcoal-grey snow-white
  chocodye meal desert-yellow soot-black --json`,
	Args: cobra.ExactArgs(2),
	RunE: runMeal,
}

func init() {
	mealCmd.Flags().Bool("json", false, "Print the meal as JSON")
}

func runMeal(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}

	found, err := env.engine.Search(args[0], args[1])
	if err != nil {
		return err
	}

	menu := meal.Format(env.catalog, found)
	out := cmd.OutOrStdout()

	if asJSON {
		data, err := menu.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	start, _ := env.catalog.Color(found.Start)
	target, _ := env.catalog.Color(found.Target)
	fmt.Fprintf(out, "%s -> %s\n\n",
		env.palette.Swatch(start.RGB, " "+catalog.DisplayName(start.Name)+" "),
		env.palette.Swatch(target.RGB, " "+catalog.DisplayName(target.Name)+" "))

	printMenu(out, menu)
	return nil
}

// printMenu writes the feeding order, the shopping list and the cost.
func printMenu(out io.Writer, menu meal.Menu) {
	if len(menu.Lines) == 0 {
		fmt.Fprintln(out, "Nothing to feed, the chocobo already has this color.")
		return
	}

	fmt.Fprintln(out, "Feed in this order:")
	for i, line := range menu.Lines {
		fmt.Fprintf(out, "  %2d. %-22s x%d\n", i+1, line.Name, line.Quantity)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Shopping list:")
	for _, line := range menu.Required {
		fmt.Fprintf(out, "  %3d  %s\n", line.Quantity, line.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Fruit: %d   Cost: %s\n", menu.Quantity, menu.Cost)
	if menu.Savings > 0 {
		fmt.Fprintf(out, "The %s discount saves %d%% of the fruit (%s without it).\n",
			catalog.FruitLemon.DisplayName(), menu.Savings, menu.FullCost)
	}
}
