package cmd

import (
	"testing"
)

func TestDetectCommand(t *testing.T) {
	detectJSON = false
	detectToon = false

	if err := runDetect(nil, []string{"try //review and //debug(verbose=true)!"}); err != nil {
		t.Fatalf("detect command failed: %v", err)
	}
	if err := runDetect(nil, []string{"nothing here"}); err != nil {
		t.Fatalf("detect command failed: %v", err)
	}
}

func TestDetectCommandJSON(t *testing.T) {
	detectJSON = true
	detectToon = false
	defer func() { detectJSON = false }()

	if err := runDetect(nil, []string{"//review [ref:other-a1]"}); err != nil {
		t.Fatalf("detect command failed: %v", err)
	}
}

func TestCleanCommand(t *testing.T) {
	cleanHints = false
	cleanHighlights = false

	if err := runClean(nil, []string{"text with [[highlight]]\n[snippet-hint: something]"}); err != nil {
		t.Fatalf("clean command failed: %v", err)
	}
}

func TestMatchCommand(t *testing.T) {
	tc := setupCatalog(t)
	tc.WriteSnippet("debug.md", `---
tags:
  - "[error,crash]"
automention: always
---
Debugging guide
`)

	matchAgent = ""
	matchHighlight = true
	matchJSON = false
	matchToon = false

	if err := runMatch(nil, []string{"the error caused a crash"}); err != nil {
		t.Fatalf("match command failed: %v", err)
	}
	if err := runMatch(nil, []string{"nothing relevant"}); err != nil {
		t.Fatalf("match command failed: %v", err)
	}
}
