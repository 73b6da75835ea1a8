package ai

import (
	"errors"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Voici la fiche :\n{\"a\":1}\nBonne vente !", `{"a":1}`},
		{"no object", "not json", "not json"},
		{"whitespace", "  \n ", ""},
		{"backticks inside value", "```json\n{\"d\":\"<code>```bash</code>\"}\n```", "{\"d\":\"<code>```bash</code>\"}"},
		{"opening fence only", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestParseKeepsBackticksInDescription(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"description\":\"<p>Exemple : <code>```bash</code></p>\"}\n```"
	got, err := ParseGeneratedContent(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Description != "<p>Exemple : <code>```bash</code></p>" {
		t.Fatalf("description=%q", got.Description)
	}
}

func TestParseGeneratedContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"not json", "not json", ErrInvalidFormat},
		{"empty", "", ErrInvalidFormat},
		{"array", `[{"title":"a","description":"b"}]`, ErrInvalidFormat},
		{"wrong tag type", `{"title":"a","description":"<p>b</p>","tags":"x, y"}`, ErrInvalidFormat},
		{"wrong title type", `{"title":1,"description":"<p>b</p>"}`, ErrInvalidFormat},
		{"empty title", `{"title": "", "description": "x"}`, ErrIncompleteContent},
		{"blank description", `{"title": "T", "description": "   "}`, ErrIncompleteContent},
		{"missing description", `{"title": "T"}`, ErrIncompleteContent},
		{"ok", `{"title":"T","description":"<p>D</p>","tags":["a"]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGeneratedContent(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got == nil || got.Title != "T" {
					t.Fatalf("got=%+v", got)
				}
				return
			}
			if got != nil {
				t.Fatalf("partial content returned: %+v", got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestParseGeneratedContentFields(t *testing.T) {
	text := "```json\n" + `{
  "title": " Montre Pro ",
  "slug": "montre-pro",
  "description": "<p>Une montre.</p>",
  "shortDescription": "Courte.",
  "metaDescription": "Achetez la montre.",
  "tags": ["sport", " ", " gps "],
  "seoTitle": "Montre Pro - GPS",
  "vendor": "Acme"
}` + "\n```"
	got, err := ParseGeneratedContent(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Title != "Montre Pro" {
		t.Fatalf("title=%q", got.Title)
	}
	if got.Handle != "montre-pro" {
		t.Fatalf("slug should fill handle, got %q", got.Handle)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "sport" || got.Tags[1] != "gps" {
		t.Fatalf("tags=%v", got.Tags)
	}
	if got.Vendor != "Acme" || got.SEOTitle != "Montre Pro - GPS" {
		t.Fatalf("optional fields lost: %+v", got)
	}
	if got.Tags == nil {
		t.Fatal("tags must not be nil")
	}
}

func TestParseHandlePreferredOverSlug(t *testing.T) {
	got, err := ParseGeneratedContent(`{"title":"T","description":"<p>D</p>","handle":"h","slug":"s"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Handle != "h" {
		t.Fatalf("handle=%q", got.Handle)
	}
}

func TestParseMarkdownDescription(t *testing.T) {
	got, err := ParseGeneratedContent(`{"title":"T","description":"## Atouts\n\n- **léger**\n- solide"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "<h2>Atouts</h2>\n<ul>\n<li><strong>léger</strong></li>\n<li>solide</li>\n</ul>"
	if got.Description != want {
		t.Fatalf("description=%q", got.Description)
	}
}
