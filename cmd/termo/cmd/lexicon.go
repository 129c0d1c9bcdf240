package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/adapters/morph"
	"github.com/corey/termo/internal/app"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage morphological lexicons",
}

var lexiconImportCorpus string

var lexiconImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a lexicon file as a corpus overlay",
	Long:  "Parses a TSV or compiled lexicon and stores its readings as the corpus snapshot. Imported readings win over the base lexicon.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconImport,
}

var lexiconCompileCmd = &cobra.Command{
	Use:   "compile <in.tsv> <out.lex>",
	Short: "Compile a TSV lexicon to the binary format",
	Args:  cobra.ExactArgs(2),
	RunE:  runLexiconCompile,
}

var lexiconUseCmd = &cobra.Command{
	Use:   "use <file>",
	Short: "Set the project's base lexicon file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconUse,
}

func init() {
	lexiconImportCmd.Flags().StringVarP(&lexiconImportCorpus, "corpus", "c", "default", "corpus to attach the readings to")
	lexiconCmd.AddCommand(lexiconImportCmd)
	lexiconCmd.AddCommand(lexiconCompileCmd)
	lexiconCmd.AddCommand(lexiconUseCmd)
}

func runLexiconImport(cmd *cobra.Command, args []string) error {
	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.ImportLexicon(lexiconImportCorpus, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s✓ %d reading(s)%s imported into %s\n",
		colorGreen, n, colorReset, lexiconImportCorpus)
	return nil
}

func runLexiconCompile(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := morph.ParseTSV(f)
	if err != nil {
		return err
	}
	if err := morph.Compile(entries, args[1]); err != nil {
		return err
	}
	fmt.Printf("%s✓ %d reading(s)%s compiled to %s\n",
		colorGreen, len(entries), colorReset, args[1])
	return nil
}

func runLexiconUse(cmd *cobra.Command, args []string) error {
	// Validate before committing the path to config.
	lex, err := morph.LoadFile(args[0])
	if err != nil {
		return err
	}

	root := projectRoot()
	paths := app.NewPaths(root)
	if err := paths.EnsureDirs(); err != nil {
		return err
	}
	cfg, err := app.LoadConfig(paths.Config)
	if err != nil {
		return err
	}
	cfg.LexiconPath = args[0]
	if err := app.SaveConfig(paths.Config, cfg); err != nil {
		return err
	}

	fmt.Printf("%s✓ base lexicon%s set to %s (%d readings)\n",
		colorGreen, colorReset, args[0], lex.Len())
	return nil
}
