package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/snipmux/snipmux/internal/models"
)

// Source is one directory of snippet definitions with its origin tier
type Source struct {
	Path   string
	Origin models.Origin
}

// frontmatter mirrors the YAML header of a snippet file
type frontmatter struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	OnlyFor     []string `yaml:"only-for"`
	Automention string   `yaml:"automention"`
	Nesting     string   `yaml:"nesting"`
	Expand      *bool    `yaml:"expand"`
	Activation  string   `yaml:"activation"`
}

// LoadDirs reads every markdown snippet below the given sources and builds a
// catalog snapshot. Missing directories are skipped; a file that fails to
// parse becomes a warning, not an error, so one bad definition never hides
// the rest of the catalog.
func LoadDirs(sources ...Source) (*Catalog, error) {
	var snippets []*models.Snippet
	var warnings []string

	for _, src := range sources {
		if _, err := os.Stat(src.Path); os.IsNotExist(err) {
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(src.Path), "**/*.md")
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s: %w", src.Path, err)
		}
		sort.Strings(matches)

		for _, rel := range matches {
			path := filepath.Join(src.Path, rel)
			sn, err := LoadFile(path, src.Origin)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping %s: %v", path, err))
				continue
			}
			snippets = append(snippets, sn)
		}
	}

	cat := Build(snippets)
	cat.Warnings = append(warnings, cat.Warnings...)
	return cat, nil
}

// LoadFile parses one snippet definition file. The name falls back to the
// file name without extension when the frontmatter omits it.
func LoadFile(path string, origin models.Origin) (*models.Snippet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snippet: %w", err)
	}

	fm, body, err := splitFrontmatter(string(data))
	if err != nil {
		return nil, err
	}

	var header frontmatter
	if fm != "" {
		if err := yaml.Unmarshal([]byte(fm), &header); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	name := header.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	sn := &models.Snippet{
		Name:        name,
		Aliases:     header.Aliases,
		Description: header.Description,
		Tags:        header.Tags,
		OnlyFor:     header.OnlyFor,
		Automention: models.AutomentionMode(header.Automention),
		Nesting:     models.NestingMode(header.Nesting),
		Expand:      true,
		Activation:  models.ActivationMode(header.Activation),
		Content:     strings.TrimSpace(body),
		Origin:      origin,
	}
	if header.Expand != nil {
		sn.Expand = *header.Expand
	}
	if sn.Automention == "" {
		sn.Automention = models.AutomentionNever
	}
	if sn.Nesting == "" {
		sn.Nesting = models.NestingDisabled
	}

	switch sn.Automention {
	case models.AutomentionAlways, models.AutomentionAlwaysExpanded, models.AutomentionNever:
	default:
		return nil, fmt.Errorf("invalid automention mode %q", sn.Automention)
	}
	switch sn.Nesting {
	case models.NestingDisabled, models.NestingHintsOnly, models.NestingEnabled:
	default:
		return nil, fmt.Errorf("invalid nesting mode %q", sn.Nesting)
	}

	return sn, nil
}

// splitFrontmatter separates an optional leading YAML block delimited by
// --- lines from the body
func splitFrontmatter(content string) (string, string, error) {
	if !strings.HasPrefix(content, "---\n") && content != "---" {
		return "", content, nil
	}

	rest := strings.TrimPrefix(content, "---\n")
	if end := strings.Index(rest, "\n---\n"); end >= 0 {
		return rest[:end], rest[end+len("\n---\n"):], nil
	}
	if strings.HasSuffix(rest, "\n---") {
		return strings.TrimSuffix(rest, "\n---"), "", nil
	}
	return "", "", fmt.Errorf("unterminated frontmatter")
}
