package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/models"
)

var (
	listTag    string
	listOrigin string
	listJSON   bool
	listToon   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all snippets in the catalog",
	Long: `List every snippet loaded from the configured directories.

Examples:
  snipmux list
  snipmux list --tag debugging
  snipmux list --origin project`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag expression text")
	listCmd.Flags().StringVar(&listOrigin, "origin", "", "Filter by origin (project, global, bundled)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listToon, "toon", false, "Output in LLM-friendly toon format")
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var snippets []*models.Snippet
	for _, name := range cat.Names() {
		sn := cat.Get(name)

		if listOrigin != "" && string(sn.Origin) != listOrigin {
			continue
		}
		if listTag != "" && !hasTag(sn, listTag) {
			continue
		}

		snippets = append(snippets, sn)
	}

	if listJSON {
		return printJSON(snippets)
	}
	if listToon {
		return printToon(snippets)
	}

	if len(snippets) == 0 {
		fmt.Println("No snippets found")
		return nil
	}

	fmt.Printf("Found %d snippet(s):\n\n", len(snippets))
	for _, sn := range snippets {
		fmt.Printf("  //%s [%s]\n", sn.Name, sn.Origin)
		if sn.Description != "" {
			fmt.Printf("    %s\n", sn.Description)
		}
		if len(sn.Aliases) > 0 {
			fmt.Printf("    Aliases: %v\n", sn.Aliases)
		}
		if len(sn.Tags) > 0 {
			fmt.Printf("    Tags:    %v\n", sn.Tags)
		}
		fmt.Println()
	}

	return nil
}

func hasTag(sn *models.Snippet, tag string) bool {
	for _, t := range sn.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
