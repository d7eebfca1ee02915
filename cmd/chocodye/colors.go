package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chocodye/internal/catalog"
)

var colorsCmd = &cobra.Command{
	Use:   "colors [category]",
	Short: "List dye colors",
	Long: `Shows every dye color of the catalog, grouped by category.
Pass a category (white, red, brown, yellow, green, blue, purple) to list
only its colors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runColors,
}

func runColors(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	categories := catalog.Categories()
	if len(args) == 1 {
		category, ok := catalog.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q", args[0])
		}
		categories = []catalog.Category{category}
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range env.catalog.Colors() {
		if len(c.Name) > maxNameLen {
			maxNameLen = len(c.Name)
		}
	}

	out := cmd.OutOrStdout()
	for _, category := range categories {
		colors := env.catalog.ColorsIn(category)
		if len(colors) == 0 {
			continue
		}

		fmt.Fprintf(out, "%s (%d)\n", catalog.DisplayName(category.String()), len(colors))
		for _, c := range colors {
			fmt.Fprintf(out, "  %s%-*s  %s\n", env.palette.Chip(c.RGB), maxNameLen, c.Name, c.RGB.Hex())
		}
		fmt.Fprintln(out)
	}

	def := env.catalog.DefaultColor()
	fmt.Fprintf(out, "A freshly hatched chocobo is %s.\n", def.Name)
	return nil
}
