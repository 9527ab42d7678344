package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/matcher"
)

var (
	showJSON bool
	showToon bool
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one snippet definition",
	Long: `Show a snippet's metadata and content. The name is resolved the
same way mentions are: exact first, then ignoring case, hyphens and
underscores, then aliases.

Example:
  snipmux show code-review`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showToon, "toon", false, "Output in LLM-friendly toon format")
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	sn := cat.Resolve(args[0])
	if sn == nil {
		if sugg := matcher.Suggest(args[0], cat.AllNames(), 3); len(sugg) > 0 {
			return fmt.Errorf("snippet not found: %s (did you mean: %s)", args[0], strings.Join(sugg, ", "))
		}
		return fmt.Errorf("snippet not found: %s", args[0])
	}

	if showJSON {
		return printJSON(sn)
	}
	if showToon {
		return printToon(sn)
	}

	fmt.Printf("//%s [%s]\n", sn.Name, sn.Origin)
	if sn.Description != "" {
		fmt.Printf("Description: %s\n", sn.Description)
	}
	if len(sn.Aliases) > 0 {
		fmt.Printf("Aliases:     %v\n", sn.Aliases)
	}
	if len(sn.Tags) > 0 {
		fmt.Printf("Tags:        %v\n", sn.Tags)
	}
	if len(sn.OnlyFor) > 0 {
		fmt.Printf("Only for:    %v\n", sn.OnlyFor)
	}
	fmt.Printf("Automention: %s\n", sn.Automention)
	fmt.Printf("Nesting:     %s\n", sn.Nesting)
	fmt.Printf("Expand:      %v\n", sn.Expand)
	fmt.Println()
	fmt.Println(sn.Content)

	return nil
}
