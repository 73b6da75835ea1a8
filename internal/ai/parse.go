package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shinyyama/omnicopy-backend/internal/model"
	"github.com/yuin/goldmark"
)

var (
	fencePattern   = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	htmlTagPattern = regexp.MustCompile(`<\s*/?\s*[a-zA-Z][a-zA-Z0-9]*[^>]*>`)
	ErrParseFailed = errors.New("parse_failed")
)

// rawContent mirrors every shape the templates ask for; slug is the v1 name of handle.
type rawContent struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	MetaDescription  string   `json:"metaDescription"`
	Tags             []string `json:"tags"`
	Handle           string   `json:"handle"`
	Slug             string   `json:"slug"`
	Vendor           string   `json:"vendor"`
	SEOTitle         string   `json:"seoTitle"`
	Option1Name      string   `json:"option1Name"`
	Option1Value     string   `json:"option1Value"`
}

// StripCodeFence removes a markdown code fence around the answer and any prose
// outside the outermost JSON object.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(s); len(m) >= 2 {
		s = strings.TrimSpace(m[1])
	} else {
		// Unmatched fences are stripped wherever they appear.
		s = strings.ReplaceAll(s, "```json", "")
		s = strings.ReplaceAll(s, "```", "")
		s = strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "{") {
		return s
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// ParseGeneratedContent turns raw model text into a validated GeneratedContent.
// Malformed or mistyped JSON yields ErrInvalidFormat, a blank title or
// description yields ErrIncompleteContent.
func ParseGeneratedContent(text string) (*model.GeneratedContent, error) {
	clean := StripCodeFence(text)
	if clean == "" {
		return nil, newGenerationError(KindInvalidFormat, fmt.Errorf("%w: empty response", ErrParseFailed))
	}
	var raw rawContent
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return nil, newGenerationError(KindInvalidFormat, fmt.Errorf("%w: %v", ErrParseFailed, err))
	}

	content := &model.GeneratedContent{
		Title:            strings.TrimSpace(raw.Title),
		Description:      strings.TrimSpace(raw.Description),
		ShortDescription: strings.TrimSpace(raw.ShortDescription),
		MetaDescription:  strings.TrimSpace(raw.MetaDescription),
		Tags:             cleanTags(raw.Tags),
		Handle:           strings.TrimSpace(raw.Handle),
		Vendor:           strings.TrimSpace(raw.Vendor),
		SEOTitle:         strings.TrimSpace(raw.SEOTitle),
		Option1Name:      strings.TrimSpace(raw.Option1Name),
		Option1Value:     strings.TrimSpace(raw.Option1Value),
	}
	if content.Handle == "" {
		content.Handle = strings.TrimSpace(raw.Slug)
	}

	var missing []string
	if content.Title == "" {
		missing = append(missing, "title")
	}
	if content.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, newGenerationError(KindIncompleteContent, fmt.Errorf("missing %s", strings.Join(missing, ", ")))
	}

	html, err := ensureHTML(content.Description)
	if err != nil {
		return nil, newGenerationError(KindInvalidFormat, fmt.Errorf("render description: %w", err))
	}
	content.Description = html
	return content, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ensureHTML renders Markdown descriptions; HTML answers pass through untouched.
func ensureHTML(desc string) (string, error) {
	if htmlTagPattern.MatchString(desc) {
		return desc, nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(desc), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
