package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/app"
)

var (
	scanCorpus string
	scanUpdate bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Count candidate mentions in a text",
	Long:  "Scans a text file (or stdin) for occurrences of every stored candidate. With --update, the counts are added to the stored frequencies.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanCorpus, "corpus", "c", "default", "candidate list to scan for")
	scanCmd.Flags().BoolVarP(&scanUpdate, "update", "u", false, "persist counts into candidate frequencies")
}

func runScan(cmd *cobra.Command, args []string) error {
	var text []byte
	var err error
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	hits, err := a.Scan(scanCorpus, string(text), scanUpdate)
	if err != nil {
		return err
	}

	fmt.Printf("%s%d candidate(s) mentioned%s in %s\n",
		colorBold, len(hits), colorReset, scanCorpus)
	for _, h := range hits {
		fmt.Printf("  %s#%d%s  %s%s%s  ×%d\n",
			colorGray, h.Candidate.ID, colorReset,
			colorCyan, h.Candidate.Text, colorReset, h.Count)
	}
	return nil
}
