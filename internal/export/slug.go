package export

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases the name and joins its whitespace-separated words with hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(norm.NFC.String(name))), "-")
}

// handleFor prefers the model's handle and falls back to the slugified product name.
func handleFor(handle, name string) string {
	if h := strings.TrimSpace(handle); h != "" {
		return h
	}
	return Slugify(name)
}
