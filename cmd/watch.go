package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/catalog"
	"github.com/snipmux/snipmux/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch snippet directories and validate on change",
	Long: `Watch the configured snippet directories and reload the catalog
whenever a definition changes, reporting parse errors and warnings as
they happen. Useful while authoring snippets.

Example:
  snipmux watch`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	sources := config.CatalogSources()

	cat, err := catalog.LoadDirs(sources...)
	if err != nil {
		return err
	}
	reportCatalog(cat)

	watcher, err := catalog.Watch(sources,
		func(cat *catalog.Catalog) {
			fmt.Println("Catalog reloaded")
			reportCatalog(cat)
		},
		func(err error) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		},
	)
	if err != nil {
		return err
	}
	defer watcher.Close()

	fmt.Println("Watching for changes (ctrl-c to stop)")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return nil
}

func reportCatalog(cat *catalog.Catalog) {
	fmt.Printf("%d snippet(s) loaded\n", cat.Len())
	for _, w := range cat.Warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
}
