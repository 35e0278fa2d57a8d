package speech

import "regexp"

const redactedPlaceholder = "[hidden details]"

// Patterns that must never reach a speech engine: card-like digit runs,
// SSN-like digit groups and passport mentions.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:\d[ -]*?){13,16}\b`),
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	regexp.MustCompile(`(?i)passport`),
}

var markupTags = regexp.MustCompile(`<[^>]*>`)

// Redact masks sensitive substrings with a fixed placeholder.
func Redact(text string) string {
	for _, p := range sensitivePatterns {
		text = p.ReplaceAllString(text, redactedPlaceholder)
	}
	return text
}

// StripMarkup removes structured speech markup before handing text to an
// engine that reads tags aloud instead of interpreting them.
func StripMarkup(text string) string {
	return markupTags.ReplaceAllString(text, "")
}
