package posts

import (
	"strings"
	"testing"
)

func TestExtractHashtags(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"Hello #World and #world", []string{"world", "world"}},
		{"no tags here", []string{}},
		{"#Go_2024 rocks #GO", []string{"go_2024", "go"}},
		{"edge#case #a#b", []string{"case", "a", "b"}},
		{"", []string{}},
	}

	for _, c := range cases {
		got := ExtractHashtags(c.text)
		if len(got) != len(c.want) {
			t.Errorf("ExtractHashtags(%q) = %v, want %v", c.text, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ExtractHashtags(%q)[%d] = %q, want %q", c.text, i, got[i], c.want[i])
			}
		}
	}
}

func TestExtractHashtagsNeverNil(t *testing.T) {
	if ExtractHashtags("plain text") == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestValidateContent(t *testing.T) {
	if err := ValidateContent(strings.Repeat("a", 280)); err != nil {
		t.Errorf("280 runes should pass, got %v", err)
	}
	if err := ValidateContent(strings.Repeat("a", 281)); err == nil {
		t.Error("281 runes should fail")
	}
	// multi-byte runes count as one character each
	if err := ValidateContent(strings.Repeat("é", 280)); err != nil {
		t.Errorf("280 multi-byte runes should pass, got %v", err)
	}
	if err := ValidateContent(""); err == nil {
		t.Error("empty content should fail")
	}
	if err := ValidateContent("   \n\t "); err == nil {
		t.Error("whitespace-only content should fail")
	}
	if err := ValidateContent("ok"); err != nil {
		t.Errorf("normal content should pass, got %v", err)
	}
}
