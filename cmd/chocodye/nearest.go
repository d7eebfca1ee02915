package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chocodye/internal/catalog"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <#rrggbb>",
	Short: "Find the dye closest to an RGB value",
	Long: `Finds the catalog color with the smallest euclidean RGB distance to the
given color. Quote the argument so the shell does not read '#' as a comment.

Examples:
  chocodye nearest '#3b4d3c'
  chocodye nearest '#ffffff'`,
	Args: cobra.ExactArgs(1),
	RunE: runNearest,
}

func runNearest(cmd *cobra.Command, args []string) error {
	rgb, err := catalog.ParseHex(args[0])
	if err != nil {
		return err
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}

	c, exact := env.catalog.Nearest(rgb)
	out := cmd.OutOrStdout()

	if exact {
		fmt.Fprintf(out, "%s%s is exactly %s\n", env.palette.Chip(c.RGB), rgb.Hex(), c.Name)
		return nil
	}
	fmt.Fprintf(out, "%s%s is closest to %s (%s, distance %d)\n",
		env.palette.Chip(c.RGB), rgb.Hex(), c.Name, c.RGB.Hex(), c.RGB.Distance(rgb))
	return nil
}
