package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/engine"
)

var (
	cleanHints      bool
	cleanHighlights bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text]",
	Short: "Strip injected hint lines and keyword highlights",
	Long: `Remove snipmux-injected artifacts from previously processed text.
By default both hint lines and [[keyword]] highlights are stripped;
--hints or --highlights restricts the pass. Cleaning is idempotent.

Example:
  snipmux clean "some processed text" | pbcopy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolVar(&cleanHints, "hints", false, "Strip only hint lines")
	cleanCmd.Flags().BoolVar(&cleanHighlights, "highlights", false, "Strip only keyword highlights")
}

func runClean(cmd *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	all := !cleanHints && !cleanHighlights
	if cleanHints || all {
		text = engine.StripHints(text)
	}
	if cleanHighlights || all {
		text = engine.StripHighlights(text)
	}

	fmt.Println(text)
	return nil
}
