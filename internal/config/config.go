package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/snipmux/snipmux/internal/catalog"
	"github.com/snipmux/snipmux/internal/models"
)

// GetDeduplicate returns whether repeats of a mention within one message
// collapse into short reference tags
func GetDeduplicate() bool {
	return viper.GetBool("expand.deduplicate")
}

// GetMaxNestingDepth returns the nested-expansion depth limit
func GetMaxNestingDepth() int {
	return viper.GetInt("expand.max_nesting_depth")
}

// GetProjectDir returns the project-local snippet directory
func GetProjectDir() string {
	return viper.GetString("catalog.project_dir")
}

// GetGlobalDir returns the global snippet directory
func GetGlobalDir() string {
	return expandHome(viper.GetString("catalog.global_dir"))
}

// GetSessionDir returns where session reference stores are persisted
func GetSessionDir() string {
	return expandHome(viper.GetString("session.dir"))
}

// GetEmbeddingsEnabled returns whether embedding-based features are on
func GetEmbeddingsEnabled() bool {
	return viper.GetBool("embeddings.enabled")
}

// GetEmbeddingModel returns the ollama embedding model name
func GetEmbeddingModel() string {
	return viper.GetString("embeddings.model")
}

// GetOllamaURL returns the ollama endpoint
func GetOllamaURL() string {
	return viper.GetString("embeddings.ollama_url")
}

// GetEmbeddingCacheDir returns where snippet embedding vectors are cached
func GetEmbeddingCacheDir() string {
	return expandHome(viper.GetString("embeddings.cache_dir"))
}

// CatalogSources returns the configured snippet directories. The global tier
// loads first so project definitions replace global ones on name collisions.
func CatalogSources() []catalog.Source {
	return []catalog.Source{
		{Path: GetGlobalDir(), Origin: models.OriginGlobal},
		{Path: GetProjectDir(), Origin: models.OriginProject},
	}
}

// expandHome resolves a leading ~ against the user's home directory
func expandHome(path string) string {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
