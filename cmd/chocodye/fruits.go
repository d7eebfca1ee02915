package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chocodye/internal/catalog"
)

var fruitsCmd = &cobra.Command{
	Use:   "fruits",
	Short: "List fruits and their effect on plumage",
	Long:  `Shows every fruit a chocobo can be fed, with the RGB shift of one feeding.`,
	Args:  cobra.NoArgs,
	RunE:  runFruits,
}

func runFruits(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-10s  %-22s  %s\n", "ID", "Name", "Effect")
	fmt.Fprintf(out, "  %-10s  %-22s  %s\n", "--", "----", "------")

	for _, f := range catalog.Fruits() {
		effect := "resets to " + env.catalog.DefaultColor().Name
		if !f.IsDiscount() {
			r, g, b := f.Effect()
			effect = fmt.Sprintf("R%+d G%+d B%+d", r, g, b)
		}
		fmt.Fprintf(out, "  %-10s  %-22s  %s\n", f, f.DisplayName(), effect)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Every feeding after a %s costs %d%% less.\n",
		catalog.FruitLemon.DisplayName(), env.catalog.DiscountPercent())
	return nil
}
