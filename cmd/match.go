package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/engine"
)

var (
	matchAgent     string
	matchHighlight bool
	matchJSON      bool
	matchToon      bool
)

var matchCmd = &cobra.Command{
	Use:   "match [text]",
	Short: "Show which snippets auto-match a message",
	Long: `Run the auto-matcher over the given text (or stdin) without
expanding anything. For every matched snippet the triggering tag
expressions are reported; --highlight additionally marks the matched
keywords in the text.

Examples:
  snipmux match "the error caused a crash"
  snipmux match --agent reviewer --highlight "please review this diff"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchAgent, "agent", "", "Active agent context")
	matchCmd.Flags().BoolVar(&matchHighlight, "highlight", false, "Mark matched keywords in the text")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Output as JSON")
	matchCmd.Flags().BoolVar(&matchToon, "toon", false, "Output in LLM-friendly toon format")
}

type matchReport struct {
	Name        string   `json:"name"`
	Mode        string   `json:"mode"`
	MatchedTags []string `json:"matched_tags,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

func runMatch(cmd *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	res := engine.AutoMatch(text, cat, matchAgent, nil)

	var reports []matchReport
	var keywords []string
	collect := func(names []string, mode string) {
		for _, name := range names {
			r := matchReport{Name: name, Mode: mode}
			if sn := cat.Get(name); sn != nil {
				r.MatchedTags, r.Keywords = engine.MatchDetails(text, sn)
			}
			keywords = append(keywords, r.Keywords...)
			reports = append(reports, r)
		}
	}
	collect(res.AutoApply, "auto-apply")
	collect(res.AutoApplyExpanded, "auto-apply-expanded")
	collect(res.HintOnly, "hint-only")

	if matchJSON {
		return printJSON(reports)
	}
	if matchToon {
		return printToon(reports)
	}

	if len(reports) == 0 {
		fmt.Println("No snippets match")
		return nil
	}

	fmt.Printf("Found %d matching snippet(s):\n\n", len(reports))
	for _, r := range reports {
		fmt.Printf("  %s [%s]\n", r.Name, r.Mode)
		for _, tag := range r.MatchedTags {
			fmt.Printf("    matched: %s\n", tag)
		}
	}

	if matchHighlight && len(keywords) > 0 {
		fmt.Println()
		fmt.Println(engine.HighlightKeywords(text, keywords))
	}

	return nil
}
