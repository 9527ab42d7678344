package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipmux/snipmux/internal/config"
	"github.com/snipmux/snipmux/internal/session"
)

var (
	sessionJSON bool
	sessionToon bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset session reference state",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the snippets referenced in a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Forget a session's references",
	Long: `Delete a session's persisted reference store. Every snippet
mentioned afterwards is injected in full again.`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionReset,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)

	sessionShowCmd.Flags().BoolVar(&sessionJSON, "json", false, "Output as JSON")
	sessionShowCmd.Flags().BoolVar(&sessionToon, "toon", false, "Output in LLM-friendly toon format")
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	store, err := session.Load(config.GetSessionDir(), args[0])
	if err != nil {
		return err
	}

	if sessionJSON {
		return printJSON(store)
	}
	if sessionToon {
		return printToon(store)
	}

	names := store.Names()
	if len(names) == 0 {
		fmt.Println("No references in session", args[0])
		return nil
	}

	fmt.Printf("Session %s references %d snippet(s):\n\n", args[0], len(names))
	for _, name := range names {
		ref, _ := store.Get(name)
		line := fmt.Sprintf("  %s (id %s, message %s)", name, ref.ID, ref.MessageID)
		if ref.Implicit {
			line += " [implicit]"
		}
		fmt.Println(line)
	}

	return nil
}

func runSessionReset(cmd *cobra.Command, args []string) error {
	if err := session.Reset(config.GetSessionDir(), args[0]); err != nil {
		return err
	}
	fmt.Println("Session reset:", args[0])
	return nil
}
