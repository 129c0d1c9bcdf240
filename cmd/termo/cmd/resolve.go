package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/app"
)

var (
	resolveCorpus string
	resolveIDs    []int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve case-variant clusters to their normal form",
	Long:  "Picks the canonical surface form of each cluster of linked candidates and rewrites its head word. With --ids, resolves just that cluster; otherwise every linked cluster in the corpus.",
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveCorpus, "corpus", "c", "default", "candidate list to resolve")
	resolveCmd.Flags().IntSliceVar(&resolveIDs, "ids", nil, "candidate ids forming one cluster")
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	if len(resolveIDs) > 0 {
		result, err := a.Resolve(resolveCorpus, resolveIDs...)
		if err != nil {
			return err
		}
		fmt.Printf("%s✓ #%d%s %s\n", colorGreen, result.WinnerID, colorReset, result.Text)
		return nil
	}

	results, diags, err := a.ResolveAll(resolveCorpus)
	if err != nil {
		return err
	}

	fmt.Printf("%s%d cluster(s) resolved%s in %s\n", colorBold, len(results), colorReset, resolveCorpus)
	for _, r := range results {
		fmt.Printf("  %s#%d%s %s %s(cluster of %d)%s\n",
			colorGreen, r.WinnerID, colorReset, r.Text,
			colorGray, len(r.Cluster), colorReset)
	}
	printDiagnostics(diags)
	return nil
}
