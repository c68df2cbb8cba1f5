package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
)

func TestClean_Empty(t *testing.T) {
	result := htmlsanitize.Clean("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestClean_PlainText(t *testing.T) {
	result := htmlsanitize.Clean("Bonjour tout le monde")
	if result != "Bonjour tout le monde" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestClean_RemovesTags(t *testing.T) {
	result := htmlsanitize.Clean("<p>Hello</p>")
	if strings.Contains(result, "<") || !strings.Contains(result, "Hello") {
		t.Errorf("expected tags stripped and text kept, got %q", result)
	}
}

func TestClean_RemovesScript(t *testing.T) {
	result := htmlsanitize.Clean(`Hello<script>alert("xss")</script>`)
	if strings.Contains(result, "<script") {
		t.Errorf("expected script removed, got %q", result)
	}
	if !strings.Contains(result, "Hello") {
		t.Errorf("expected surrounding text preserved, got %q", result)
	}
}

func TestClean_RemovesImgWithHandler(t *testing.T) {
	result := htmlsanitize.Clean(`<img src="x" onerror="alert(1)">question sur les horaires`)
	if strings.Contains(result, "onerror") || strings.Contains(result, "<img") {
		t.Errorf("expected img element removed, got %q", result)
	}
	if !strings.Contains(result, "question sur les horaires") {
		t.Errorf("expected text preserved, got %q", result)
	}
}

func TestClean_TrimsWhitespace(t *testing.T) {
	result := htmlsanitize.Clean("  entourée d'espaces  ")
	if strings.HasPrefix(result, " ") || strings.HasSuffix(result, " ") {
		t.Errorf("expected surrounding whitespace trimmed, got %q", result)
	}
}
