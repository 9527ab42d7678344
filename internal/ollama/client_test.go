package ollama

import (
	"context"
	"testing"
)

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient("", "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.Model() != DefaultModel {
		t.Errorf("Model = %q, want %q", client.Model(), DefaultModel)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := NewClient("://not-a-url", "m"); err == nil {
		t.Error("expected an error for an invalid url")
	}
}

func TestEmbedRejectsEmptyText(t *testing.T) {
	client, err := NewClient("", "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Embed(context.Background(), ""); err == nil {
		t.Error("expected an error for empty text")
	}
}

func TestIsAvailableUnreachable(t *testing.T) {
	// nothing listens on this port
	if IsAvailable("http://127.0.0.1:1") {
		t.Error("IsAvailable reported an unreachable endpoint as up")
	}
}
