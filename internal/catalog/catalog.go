// Package catalog assembles and serves read-only snapshots of the snippet
// definitions. A snapshot never changes after Build; reloading produces a
// new snapshot.
package catalog

import (
	"fmt"
	"sort"

	"github.com/snipmux/snipmux/internal/matcher"
	"github.com/snipmux/snipmux/internal/models"
)

// Catalog is one immutable snapshot of snippet definitions
type Catalog struct {
	snippets map[string]*models.Snippet
	aliases  map[string]string
	names    []string

	// Warnings collected while building the snapshot (duplicate names,
	// aliases shadowing canonical names)
	Warnings []string
}

// Build assembles a catalog from loaded snippets. Canonical names are
// unique: a later snippet with the same name replaces the earlier one.
// An alias colliding with a canonical name is dropped; between aliases the
// last writer wins.
func Build(snippets []*models.Snippet) *Catalog {
	c := &Catalog{
		snippets: make(map[string]*models.Snippet, len(snippets)),
		aliases:  make(map[string]string),
	}

	for _, sn := range snippets {
		if sn.Name == "" {
			continue
		}
		if _, exists := c.snippets[sn.Name]; exists {
			c.Warnings = append(c.Warnings, fmt.Sprintf("duplicate snippet %q: later definition wins", sn.Name))
		} else {
			c.names = append(c.names, sn.Name)
		}
		c.snippets[sn.Name] = sn
	}

	for _, name := range c.names {
		for _, alias := range c.snippets[name].Aliases {
			if _, taken := c.snippets[alias]; taken {
				c.Warnings = append(c.Warnings, fmt.Sprintf("alias %q of %q shadows a snippet name: dropped", alias, name))
				continue
			}
			if prev, taken := c.aliases[alias]; taken && prev != name {
				c.Warnings = append(c.Warnings, fmt.Sprintf("alias %q moved from %q to %q", alias, prev, name))
			}
			c.aliases[alias] = name
		}
	}

	return c
}

// Get returns the snippet with the exact canonical name
func (c *Catalog) Get(name string) *models.Snippet {
	return c.snippets[name]
}

// Resolve maps typed input to a snippet via the name matcher, following
// aliases to the canonical entry. Returns nil when nothing matches.
func (c *Catalog) Resolve(input string) *models.Snippet {
	resolved := matcher.Resolve(input, c.AllNames())
	if resolved == "" {
		return nil
	}
	if canonical, ok := c.aliases[resolved]; ok {
		resolved = canonical
	}
	return c.snippets[resolved]
}

// Names returns the canonical snippet names in definition order
func (c *Catalog) Names() []string {
	return c.names
}

// AllNames returns canonical names plus aliases, for resolution and
// suggestion ranking
func (c *Catalog) AllNames() []string {
	all := make([]string, 0, len(c.names)+len(c.aliases))
	all = append(all, c.names...)
	aliases := make([]string, 0, len(c.aliases))
	for alias := range c.aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return append(all, aliases...)
}

// Len returns the number of snippets in the snapshot
func (c *Catalog) Len() int {
	return len(c.names)
}
