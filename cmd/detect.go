package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/engine"
	"github.com/snipmux/snipmux/internal/tokenizer"
)

var (
	detectJSON bool
	detectToon bool
)

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "List explicit mentions and embedded references in a message",
	Long: `Scan the given text (or stdin) and report every //name mention
outside code regions, plus snippet names already referenced through
expanded blocks or reference tags. Nothing is expanded.

Example:
  snipmux detect "try //review and //debug(verbose=true)!"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Output as JSON")
	detectCmd.Flags().BoolVar(&detectToon, "toon", false, "Output in LLM-friendly toon format")
}

type detectReport struct {
	Mentions   []mentionReport `json:"mentions"`
	Referenced []string        `json:"referenced,omitempty"`
}

type mentionReport struct {
	Name   string            `json:"name"`
	Forced bool              `json:"forced,omitempty"`
	Args   map[string]string `json:"args,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	report := detectReport{
		Mentions:   []mentionReport{},
		Referenced: engine.ExtractEmbeddedReferences(text),
	}
	for _, m := range tokenizer.DetectMentions(text) {
		report.Mentions = append(report.Mentions, mentionReport{
			Name:   m.Name,
			Forced: m.Forced,
			Args:   m.Args,
		})
	}

	if detectJSON {
		return printJSON(report)
	}
	if detectToon {
		return printToon(report)
	}

	if len(report.Mentions) == 0 && len(report.Referenced) == 0 {
		fmt.Println("No mentions found")
		return nil
	}

	for _, m := range report.Mentions {
		line := "  //" + m.Name
		if m.Forced {
			line += " (forced)"
		}
		if len(m.Args) > 0 {
			line += fmt.Sprintf(" args=%v", m.Args)
		}
		fmt.Println(line)
	}
	for _, name := range report.Referenced {
		fmt.Printf("  %s (already referenced)\n", name)
	}

	return nil
}
