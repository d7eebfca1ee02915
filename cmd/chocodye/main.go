// chocodye finds the cheapest fruit meal that turns a chocobo's plumage
// from one dye color into another.
//
// Usage:
//
//	chocodye colors [category]        - List dye colors
//	chocodye fruits                   - List fruits and their effect
//	chocodye meal <start> <target>    - Show the meal between two colors
//	chocodye table <start>            - Show meals from one color to every color
//	chocodye nearest <#rrggbb>        - Find the dye closest to an RGB value
//	chocodye menu                     - Pick colors interactively
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.chocodye/config.yaml)
//	--catalog <path>    - Catalog file (default: built-in dyes)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagCatalog  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chocodye",
	Short: "chocodye - Dye your chocobo with the fewest fruits",
	Long: `chocodye computes the cheapest sequence of fruit feedings that turns a
chocobo's plumage from one color into another.

Available commands:
  colors   - List dye colors, optionally of one category
  fruits   - List the fruits and how they shift the plumage
  meal     - Show the meal from one color to another
  table    - Show the meals from one color to every color
  nearest  - Find the dye closest to an RGB value
  menu     - Interactive color picker

Examples:
  chocodye colors blue
  chocodye meal charcoal-grey snow-white
  chocodye meal desert-yellow soot-black --json
  chocodye table desert-yellow
  chocodye nearest '#3b4d3c'`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings file")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to catalog file (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides settings)")

	// Add subcommands
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(fruitsCmd)
	rootCmd.AddCommand(mealCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(menuCmd)
}
