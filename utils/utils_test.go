package utils

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

func fileHeader(size int64, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateImageUpload(t *testing.T) {
	if msg, ok := ValidateImageUpload(fileHeader(1<<20, "image/png"), MaxPostImageBytes); !ok {
		t.Errorf("1MB png should pass, got %q", msg)
	}
	if _, ok := ValidateImageUpload(fileHeader(6<<20, "image/png"), MaxPostImageBytes); ok {
		t.Error("6MB should exceed the post limit")
	}
	if _, ok := ValidateImageUpload(fileHeader(3<<20, "image/png"), MaxAvatarImageBytes); ok {
		t.Error("3MB should exceed the avatar limit")
	}
	if _, ok := ValidateImageUpload(fileHeader(1024, "application/pdf"), MaxPostImageBytes); ok {
		t.Error("pdf should be rejected")
	}
	if _, ok := ValidateImageUpload(fileHeader(1024, "image/svg+xml"), MaxPostImageBytes); ok {
		t.Error("svg should be rejected")
	}
	for _, ct := range []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"} {
		if msg, ok := ValidateImageUpload(fileHeader(1024, ct), MaxPostImageBytes); !ok {
			t.Errorf("%s should be accepted, got %q", ct, msg)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := TruncateText("short", 200); got != "short" {
		t.Errorf("short text should be untouched, got %q", got)
	}
	long := strings.Repeat("x", 250)
	got := TruncateText(long, 200)
	if len([]rune(got)) != 203 {
		t.Errorf("expected 200 runes plus ellipsis, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text should end with ellipsis, got %q", got[190:])
	}
	// exact boundary: no ellipsis
	exact := strings.Repeat("y", 200)
	if got := TruncateText(exact, 200); got != exact {
		t.Error("text at the limit should be untouched")
	}
	// rune-safe with multi-byte characters
	if got := TruncateText(strings.Repeat("é", 10), 5); got != strings.Repeat("é", 5)+"..." {
		t.Errorf("multi-byte truncation wrong: %q", got)
	}
}
