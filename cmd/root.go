package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "snipmux",
	Short: "Prompt snippet expansion and intent matching for chat messages",
	Long: `snipmux turns //name mentions in chat text into reusable prompt
snippets:
  - explicit mentions (//name, //name(args), //name! to force)
  - automatic matching against each snippet's tag expressions
  - session-aware deduplication via short reference tags
  - nested snippets with cycle and depth protection

Snippets are markdown files with YAML frontmatter, loaded from a
project directory and a global directory.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/snipmux/config.toml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "snipmux")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("expand.deduplicate", true)
	viper.SetDefault("expand.max_nesting_depth", 3)
	viper.SetDefault("catalog.project_dir", ".snippets")
	viper.SetDefault("catalog.global_dir", "~/.config/snipmux/snippets")
	viper.SetDefault("session.dir", "~/.local/state/snipmux/sessions")
	viper.SetDefault("embeddings.enabled", false)
	viper.SetDefault("embeddings.model", "nomic-embed-text")
	viper.SetDefault("embeddings.ollama_url", "http://localhost:11434")
	viper.SetDefault("embeddings.cache_dir", "~/.cache/snipmux/embeddings")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
