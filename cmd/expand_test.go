package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/snipmux/snipmux/internal/config"
	"github.com/snipmux/snipmux/internal/session"
	"github.com/snipmux/snipmux/internal/testutil"
)

// setupCatalog points the configuration at a temp snippet directory and
// returns it for writing fixtures
func setupCatalog(t *testing.T) *testutil.TempCatalog {
	t.Helper()

	tc := testutil.NewTempCatalog(t)
	t.Cleanup(tc.Cleanup)

	viper.Reset()
	viper.Set("catalog.project_dir", tc.Path)
	viper.Set("catalog.global_dir", filepath.Join(tc.Path, "no-global"))
	viper.Set("session.dir", filepath.Join(tc.Path, "sessions"))
	viper.Set("expand.deduplicate", true)
	viper.Set("expand.max_nesting_depth", 3)

	return tc
}

func resetExpandFlags() {
	expandSession = ""
	expandMessageID = ""
	expandAgent = ""
	expandVars = nil
	expandAuto = false
	expandJSON = false
	expandToon = false
}

func TestExpandCommand(t *testing.T) {
	tc := setupCatalog(t)
	tc.WriteSnippet("review.md", "Review checklist content\n")

	resetExpandFlags()
	expandMessageID = "m1"

	if err := runExpand(nil, []string{"please //review this"}); err != nil {
		t.Fatalf("expand command failed: %v", err)
	}
}

func TestExpandCommandUnknownSnippet(t *testing.T) {
	tc := setupCatalog(t)
	tc.WriteSnippet("review.md", "content\n")

	resetExpandFlags()
	expandMessageID = "m1"

	// unknown mentions degrade to literal text, not an error
	if err := runExpand(nil, []string{"try //nonexistent"}); err != nil {
		t.Fatalf("expand command failed: %v", err)
	}
}

func TestExpandCommandPersistsSession(t *testing.T) {
	tc := setupCatalog(t)
	tc.WriteSnippet("review.md", "content\n")

	resetExpandFlags()
	expandSession = "test-session"
	expandMessageID = "m1"

	if err := runExpand(nil, []string{"//review"}); err != nil {
		t.Fatalf("expand command failed: %v", err)
	}

	store, err := session.Load(config.GetSessionDir(), "test-session")
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if _, ok := store.Get("review"); !ok {
		t.Error("session store missing the injected reference")
	}
}

func TestExpandCommandAuto(t *testing.T) {
	tc := setupCatalog(t)
	tc.WriteSnippet("debug.md", `---
tags:
  - "[error,crash]"
automention: always
---
Debugging guide
`)

	resetExpandFlags()
	expandMessageID = "m1"
	expandAuto = true

	if err := runExpand(nil, []string{"the error caused a crash"}); err != nil {
		t.Fatalf("expand command failed: %v", err)
	}
}

func TestResolverWith(t *testing.T) {
	resolve := resolverWith([]string{"WHO=world", "malformed"})

	if val, err := resolve("WHO"); err != nil || val != "world" {
		t.Errorf("WHO = %q, %v", val, err)
	}
	if _, err := resolve("TODAY"); err != nil {
		t.Errorf("TODAY should fall through to builtins: %v", err)
	}
	if _, err := resolve("malformed"); err == nil {
		t.Error("malformed pair should not define a variable")
	}
}

func TestBuiltinVars(t *testing.T) {
	if val, err := builtinVars("TODAY"); err != nil || len(val) != len("2006-01-02") {
		t.Errorf("TODAY = %q, %v", val, err)
	}
	if _, err := builtinVars("NOW"); err != nil {
		t.Errorf("NOW: %v", err)
	}
	if _, err := builtinVars("NOPE"); err == nil {
		t.Error("unknown variable accepted")
	}
}
