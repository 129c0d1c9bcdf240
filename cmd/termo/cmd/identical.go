package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/app"
	"github.com/corey/termo/internal/domain/colloc"
)

var identicalCmd = &cobra.Command{
	Use:   "identical <phrase1> <phrase2>",
	Short: "Check whether two phrases are grammatical case variants",
	Long:  "Compares two quoted phrases word by word via their lemmas. Case variants of the same collocation count as identical.",
	Args:  cobra.ExactArgs(2),
	RunE:  runIdentical,
}

func runIdentical(cmd *cobra.Command, args []string) error {
	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	identical, err := colloc.Identical(a.Tagger, args[0], args[1])
	if err != nil {
		return err
	}

	if identical {
		fmt.Printf("%s✓ identical%s\n", colorGreen, colorReset)
	} else {
		fmt.Printf("%s✗ distinct%s\n", colorYellow, colorReset)
	}
	return nil
}
