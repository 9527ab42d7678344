package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/config"
	"github.com/snipmux/snipmux/internal/embeddings"
	"github.com/snipmux/snipmux/internal/ollama"
)

var (
	relatedLimit int
	relatedJSON  bool
	relatedToon  bool
)

var relatedCmd = &cobra.Command{
	Use:   "related <name>",
	Short: "Find snippets semantically related to a snippet",
	Long: `Rank the rest of the catalog by embedding similarity to the named
snippet. Requires a running Ollama instance; snippet vectors are cached
by content hash, so only changed snippets are re-embedded.

Example:
  snipmux related code-review`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	rootCmd.AddCommand(relatedCmd)

	relatedCmd.Flags().IntVar(&relatedLimit, "limit", 5, "Maximum number of results")
	relatedCmd.Flags().BoolVar(&relatedJSON, "json", false, "Output as JSON")
	relatedCmd.Flags().BoolVar(&relatedToon, "toon", false, "Output in LLM-friendly toon format")
}

func runRelated(cmd *cobra.Command, args []string) error {
	if !config.GetEmbeddingsEnabled() {
		return fmt.Errorf("embeddings are disabled (set embeddings.enabled = true)")
	}
	if !ollama.IsAvailable(config.GetOllamaURL()) {
		return fmt.Errorf("ollama is not reachable at %s", config.GetOllamaURL())
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	target := cat.Resolve(args[0])
	if target == nil {
		return fmt.Errorf("snippet not found: %s", args[0])
	}

	client, err := ollama.NewClient(config.GetOllamaURL(), config.GetEmbeddingModel())
	if err != nil {
		return err
	}
	cache, err := embeddings.NewCache(config.GetEmbeddingCacheDir())
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	embed := func(name, input string) ([]float64, error) {
		key := cache.Key(client.Model(), input)
		if vec, ok := cache.Get(key); ok {
			return vec, nil
		}
		vec, err := client.Embed(ctx, input)
		if err != nil {
			return nil, err
		}
		if err := cache.Put(key, vec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cache %s: %v\n", name, err)
		}
		return vec, nil
	}

	// embed description plus content so matching works for snippets whose
	// body is mostly instructions
	query, err := embed(target.Name, target.Description+"\n"+target.Content)
	if err != nil {
		return err
	}

	candidates := make(map[string][]float64, cat.Len())
	for _, name := range cat.Names() {
		if name == target.Name {
			continue
		}
		sn := cat.Get(name)

		vec, err := embed(name, sn.Description+"\n"+sn.Content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to embed %s: %v\n", name, err)
			continue
		}
		candidates[name] = vec
	}

	matches := embeddings.Rank(query, candidates)
	if relatedLimit > 0 && len(matches) > relatedLimit {
		matches = matches[:relatedLimit]
	}

	if relatedJSON {
		return printJSON(matches)
	}
	if relatedToon {
		return printToon(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No related snippets found")
		return nil
	}

	fmt.Printf("Found %d related snippet(s):\n\n", len(matches))
	for i, m := range matches {
		fmt.Printf("%d. //%s [score: %.3f]\n", i+1, m.Name, m.Score)
		if sn := cat.Get(m.Name); sn != nil && sn.Description != "" {
			fmt.Printf("   %s\n", sn.Description)
		}
	}

	return nil
}
