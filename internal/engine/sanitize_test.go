package engine

import "testing"

func TestHintRoundTrip(t *testing.T) {
	original := "first line\nsecond line"

	hinted := AppendHint(original, "review matched on error, crash")
	if hinted == original {
		t.Fatal("AppendHint changed nothing")
	}
	if got := StripHints(hinted); got != original {
		t.Errorf("StripHints(AppendHint(x)) = %q, want %q", got, original)
	}
}

func TestStripHintsIdempotent(t *testing.T) {
	text := AppendHint("body", "some hint")
	once := StripHints(text)
	if twice := StripHints(once); twice != once {
		t.Errorf("StripHints not idempotent: %q vs %q", once, twice)
	}
	if clean := StripHints("no hints here"); clean != "no hints here" {
		t.Errorf("StripHints on clean text = %q", clean)
	}
}

func TestStripHintsMultiple(t *testing.T) {
	text := AppendHint(AppendHint("body", "one"), "two")
	if got := StripHints(text); got != "body" {
		t.Errorf("StripHints = %q, want %q", got, "body")
	}
}

func TestHighlightRoundTrip(t *testing.T) {
	original := "the error caused a crash"

	highlighted := HighlightKeywords(original, []string{"error", "crash"})
	want := "the [[error]] caused a [[crash]]"
	if highlighted != want {
		t.Errorf("HighlightKeywords = %q, want %q", highlighted, want)
	}
	if got := StripHighlights(highlighted); got != original {
		t.Errorf("StripHighlights = %q, want %q", got, original)
	}
}

func TestHighlightWholeWordOnly(t *testing.T) {
	text := "errors are not error-free"
	got := HighlightKeywords(text, []string{"error"})
	if got != "errors are not [[error]]-free" {
		t.Errorf("HighlightKeywords = %q", got)
	}
}

func TestHighlightFirstOccurrenceOnly(t *testing.T) {
	got := HighlightKeywords("error then error again", []string{"error"})
	if got != "[[error]] then error again" {
		t.Errorf("HighlightKeywords = %q", got)
	}
}

func TestHighlightCommaJoinedKeywords(t *testing.T) {
	// and-step keywords arrive comma-joined from sequence matching
	got := HighlightKeywords("an error and a crash", []string{"error, crash"})
	if got != "an [[error]] and a [[crash]]" {
		t.Errorf("HighlightKeywords = %q", got)
	}
}

func TestHighlightMissingKeyword(t *testing.T) {
	text := "nothing to see"
	if got := HighlightKeywords(text, []string{"error"}); got != text {
		t.Errorf("HighlightKeywords = %q, want unchanged", got)
	}
}
