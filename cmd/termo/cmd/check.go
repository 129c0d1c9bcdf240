package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/app"
)

var checkCorpus string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify candidate link consistency",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkCorpus, "corpus", "c", "default", "candidate list to check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.Check(checkCorpus)
	if err != nil {
		return err
	}

	switch {
	case !report.AnyLinks:
		fmt.Printf("%s− no links%s in %s\n", colorGray, colorReset, checkCorpus)
	case report.Consistent:
		fmt.Printf("%s✓ links consistent%s in %s\n", colorGreen, colorReset, checkCorpus)
	default:
		fmt.Printf("%s✗ %d broken link(s)%s in %s\n",
			colorYellow, len(report.Broken), colorReset, checkCorpus)
		for _, b := range report.Broken {
			fmt.Printf("  #%d → #%d (missing)\n", b[0], b[1])
		}
	}
	return nil
}
