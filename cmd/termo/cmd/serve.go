package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/termo/internal/adapters/web"
	"github.com/corey/termo/internal/app"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	Long:  "Serves the candidate-engine API on localhost until interrupted. The base lexicon file, when configured, is hot-reloaded on change.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to bind (default: project-derived)")
}

func runServe(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	a, err := app.New(root)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer a.Close()

	if err := a.WatchLexicon(); err != nil {
		return fmt.Errorf("watch lexicon: %w", err)
	}

	port := servePort
	if port == 0 {
		port = a.Config.HTTPPort
	}
	if port == 0 {
		port = web.DefaultPort(root)
	}

	srv := web.NewServer(a, a.Paths.PortFile)
	if err := srv.Start(port); err != nil {
		return err
	}
	defer srv.Stop()

	fmt.Printf("%s⚡ termo API%s at %s\n", colorBold, colorReset, srv.URL())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\n⚡ shutting down...")
	return nil
}
