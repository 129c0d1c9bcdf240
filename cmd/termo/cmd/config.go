package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/adapters/web"
	"github.com/corey/termo/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows project root, DB path, lexicon source, and HTTP port. No server required.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)
	cfg, err := app.LoadConfig(paths.Config)
	if err != nil {
		return err
	}

	lexicon := cfg.LexiconPath
	if lexicon == "" {
		lexicon = "(embedded starter set)"
	}
	port := cfg.HTTPPort
	if port == 0 {
		port = web.DefaultPort(root)
	}

	fmt.Printf("%s⚡ termo config%s\n", colorBold, colorReset)
	fmt.Printf("  Project:  %s\n", filepath.Base(root))
	fmt.Printf("  Root:     %s\n", root)
	fmt.Printf("  DB:       %s\n", paths.DB)
	fmt.Printf("  Lexicon:  %s\n", lexicon)
	fmt.Printf("  Port:     %d\n", port)

	if portData, err := os.ReadFile(paths.PortFile); err == nil {
		fmt.Printf("  API:      http://localhost:%s %s(running)%s\n",
			strings.TrimSpace(string(portData)), colorGreen, colorReset)
	}
	return nil
}
