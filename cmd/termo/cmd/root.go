package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termo",
	Short: "termo — terminology candidate engine",
	Long:  "Grammatical identity, deduplication, and normal-form resolution for Russian multi-word term candidates.",
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(identicalCmd)
	rootCmd.AddCommand(dedupCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(longerCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
