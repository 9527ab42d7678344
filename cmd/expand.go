package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/catalog"
	"github.com/snipmux/snipmux/internal/config"
	"github.com/snipmux/snipmux/internal/engine"
	"github.com/snipmux/snipmux/internal/session"
)

var (
	expandSession   string
	expandMessageID string
	expandAgent     string
	expandVars      []string
	expandAuto      bool
	expandJSON      bool
	expandToon      bool
)

var expandCmd = &cobra.Command{
	Use:   "expand [text]",
	Short: "Expand snippet mentions in a message",
	Long: `Expand every //name mention in the given text (or stdin when no
argument is given) into its snippet block. Repeated mentions within the
message collapse into short reference tags, and mentions of snippets
already injected earlier in the session become reference tags too.

Examples:
  snipmux expand "check this //code-review"
  echo "//debug(verbose=true)" | snipmux expand --session abc
  snipmux expand --auto --agent reviewer "the error caused a crash"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)

	expandCmd.Flags().StringVar(&expandSession, "session", "", "Session id for reference tracking")
	expandCmd.Flags().StringVar(&expandMessageID, "message-id", "", "Message id (defaults to a new UUID)")
	expandCmd.Flags().StringVar(&expandAgent, "agent", "", "Active agent context for auto-matching")
	expandCmd.Flags().StringArrayVar(&expandVars, "context", nil, "Extra variable as key=val (repeatable)")
	expandCmd.Flags().BoolVar(&expandAuto, "auto", false, "Also inject auto-matched snippets")
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "Output the full result as JSON")
	expandCmd.Flags().BoolVar(&expandToon, "toon", false, "Output the full result in LLM-friendly toon format")
}

func runExpand(cmd *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	store := session.NewStore()
	if expandSession != "" {
		store, err = session.Load(config.GetSessionDir(), expandSession)
		if err != nil {
			return err
		}
	}

	messageID := expandMessageID
	if messageID == "" {
		messageID = uuid.NewString()
	}

	if expandAuto {
		text = appendAutoMentions(text, cat)
	}

	res := engine.Expand(text, cat, store, messageID, resolverWith(expandVars), engine.Config{
		Deduplicate:     config.GetDeduplicate(),
		MaxNestingDepth: config.GetMaxNestingDepth(),
	})

	if expandSession != "" && len(res.NewRefs) > 0 {
		store.Apply(session.Delta(res.NewRefs))
		if err := store.Save(config.GetSessionDir(), expandSession); err != nil {
			return err
		}
	}

	for _, w := range append(cat.Warnings, res.Warnings...) {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	for name, sugg := range res.Suggestions {
		fmt.Fprintf(os.Stderr, "Unknown snippet //%s - did you mean: %s\n", name, strings.Join(sugg, ", "))
	}
	for _, hint := range res.Hints {
		fmt.Fprintln(os.Stderr, "Hint:", hint)
	}

	if expandJSON {
		return printJSON(res)
	}
	if expandToon {
		return printToon(res)
	}

	fmt.Println(res.Text)
	return nil
}

// appendAutoMentions turns auto-matched snippets into explicit mentions
// appended to the text, so the normal expansion pass handles injection
func appendAutoMentions(text string, cat *catalog.Catalog) string {
	match := engine.AutoMatch(text, cat, expandAgent, nil)

	var mentions []string
	for _, name := range match.AutoApply {
		mentions = append(mentions, "//"+name)
	}
	for _, name := range match.AutoApplyExpanded {
		mentions = append(mentions, "//"+name+"!")
	}
	if len(mentions) == 0 {
		return text
	}
	return text + "\n" + strings.Join(mentions, " ")
}

// builtinVars resolves {{TODAY}} and {{NOW}} placeholders
func builtinVars(name string) (string, error) {
	switch name {
	case "TODAY":
		return time.Now().Format("2006-01-02"), nil
	case "NOW":
		return time.Now().Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("unknown variable %q", name)
}

// resolverWith layers --context key=val pairs over the built-in variables
func resolverWith(pairs []string) engine.VarResolver {
	extra := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if key, val, ok := strings.Cut(pair, "="); ok {
			extra[key] = val
		}
	}
	return func(name string) (string, error) {
		if val, ok := extra[name]; ok {
			return val, nil
		}
		return builtinVars(name)
	}
}

// inputText returns the positional argument or stdin
func inputText(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// loadCatalog builds a catalog snapshot from the configured directories
func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.LoadDirs(config.CatalogSources()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load snippet catalog: %w", err)
	}
	return cat, nil
}
