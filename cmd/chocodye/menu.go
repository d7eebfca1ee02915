package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chocodye/internal/meal"
	"github.com/vovakirdan/chocodye/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick colors interactively",
	Long: `Start the interactive color picker.

Pick the chocobo's current color, then the wanted color, and read the
meal. The last meal shown is printed when you quit.

Controls:
  Up/Down/j/k  - Navigate colors
  Tab/S-Tab    - Jump between categories
  Enter/Space  - Select color
  Esc/B        - Back
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	result, err := tui.RunMenu(env.engine, env.palette, width, height)
	if err != nil {
		return err
	}

	if result.Meal != nil {
		printMenu(cmd.OutOrStdout(), meal.Format(env.catalog, *result.Meal))
	}
	return nil
}
