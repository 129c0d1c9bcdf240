package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/app"
	"github.com/corey/termo/internal/ports"
)

var tagCmd = &cobra.Command{
	Use:   "tag <phrase>",
	Short: "Tag a phrase with part of speech, case, and lemma",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTag,
}

func runTag(cmd *cobra.Command, args []string) error {
	a, err := app.New(projectRoot())
	if err != nil {
		return err
	}
	defer a.Close()

	phrase := strings.Join(args, " ")
	tokens, err := a.Tagger.TagPhrase(phrase)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		fmt.Printf("%sno recognizable words in %q%s\n", colorYellow, phrase, colorReset)
		return nil
	}

	for _, t := range tokens {
		switch v := t.(type) {
		case ports.TaggedWord:
			fmt.Printf("  %s%-20s%s %s,%s  %s→ %s%s\n",
				colorCyan, v.Word, colorReset,
				v.POS, v.Case,
				colorGray, v.Normalized, colorReset)
		case ports.Separator:
			fmt.Printf("  %s%c%s\n", colorGray, v.Symbol, colorReset)
		}
	}
	return nil
}
