package services

import (
	"strings"
	"testing"
)

func TestCodePrefixFromEmail(t *testing.T) {
	if got := codePrefix("alice@example.com", 4); got != "ALIC" {
		t.Errorf("Expected ALIC, got %q", got)
	}
	if got := codePrefix("bob.99@example.com", 4); got != "BOB9" {
		t.Errorf("Expected BOB9, got %q", got)
	}
}

func TestCodePrefixPadsShortLocalPart(t *testing.T) {
	got := codePrefix("a@x.io", 4)
	if len(got) != 4 {
		t.Fatalf("Expected 4 characters, got %q", got)
	}
	if !strings.HasPrefix(got, "A") {
		t.Errorf("Expected prefix to start with A, got %q", got)
	}
	for _, r := range got {
		if !strings.ContainsRune(codeCharset, r) {
			t.Errorf("Character %q outside code charset", r)
		}
	}
}

func TestCodePrefixEmptyEmail(t *testing.T) {
	if got := codePrefix("", 4); len(got) != 4 {
		t.Fatalf("Expected 4 random characters, got %q", got)
	}
}

func TestRandomCodeCharsVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[randomCodeChars(8)] = true
	}
	if len(seen) < 2 {
		t.Error("Back-to-back calls produced identical codes")
	}
}

func TestRandomCodeCharset(t *testing.T) {
	got := randomCodeChars(8)
	if len(got) != 8 {
		t.Fatalf("Expected 8 characters, got %q", got)
	}
	for _, r := range got {
		if !strings.ContainsRune(codeCharset, r) {
			t.Errorf("Character %q outside code charset", r)
		}
	}
}
