package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/app"
)

var dedupCorpus string

var dedupCmd = &cobra.Command{
	Use:   "dedup <phrase>",
	Short: "Find stored candidates identical to a phrase",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDedup,
}

func init() {
	dedupCmd.Flags().StringVarP(&dedupCorpus, "corpus", "c", "default", "candidate list to search")
}

func runDedup(cmd *cobra.Command, args []string) error {
	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	phrase := strings.Join(args, " ")
	result, err := a.Dedup(dedupCorpus, phrase)
	if err != nil {
		return err
	}

	fmt.Printf("%s%d duplicate(s)%s of %q in %s\n",
		colorBold, len(result.Matches), colorReset, phrase, dedupCorpus)
	for _, m := range result.Matches {
		fmt.Println(formatCandidate(m))
	}
	printDiagnostics(result.Diagnostics)
	return nil
}
