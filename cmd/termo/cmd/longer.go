package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/app"
)

var longerCorpus string

var longerCmd = &cobra.Command{
	Use:   "longer <phrase>",
	Short: "Find stored candidates that contain a phrase",
	Long:  "Lists every longer candidate containing the phrase as a contiguous sub-collocation, and links the stored phrase to them.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLonger,
}

func init() {
	longerCmd.Flags().StringVarP(&longerCorpus, "corpus", "c", "default", "candidate list to search")
}

func runLonger(cmd *cobra.Command, args []string) error {
	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	phrase := strings.Join(args, " ")
	matches, diags, err := a.LinkLonger(longerCorpus, phrase)
	if err != nil {
		return err
	}

	fmt.Printf("%s%d containing term(s)%s for %q in %s\n",
		colorBold, len(matches), colorReset, phrase, longerCorpus)
	for _, m := range matches {
		fmt.Println(formatCandidate(m))
	}
	printDiagnostics(diags)
	return nil
}
