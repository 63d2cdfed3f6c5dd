// Package langdetect detects the programming language of code snippets.
// It backs the language tag on fenced code blocks whose info string is
// empty, using go-enry with a few fast-path heuristics in front of the
// classifier.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// DefaultTag is returned when detection fails or confidence is low.
const DefaultTag = "text"

// classifierCandidates restricts the enry classifier to languages that
// actually show up in fenced blocks; an open-world classification is both
// slower and noisier.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby", "Rust",
	"Java", "C", "C++", "SQL", "JSON", "YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a lowercase fence tag for the given code content, or
// DefaultTag when nothing matches with confidence.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return DefaultTag
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return tagFor(lang)
	}

	if tag := detectByHeuristic(trimmed); tag != "" {
		return tag
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return tagFor(lang)
	}

	return DefaultTag
}

// detectByHeuristic checks cheap, highly indicative prefixes and substrings
// before handing off to the statistical classifier.
func detectByHeuristic(trimmed []byte) string {
	s := string(trimmed)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) && strings.Contains(s, "\nRUN "):
		return "dockerfile"
	case bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")), bytes.HasPrefix(trimmed, []byte("<html")):
		return "html"
	case (trimmed[0] == '{' || trimmed[0] == '[') && strings.Contains(s, `"`):
		return "json"
	case strings.Contains(s, "def ") && strings.Contains(s, "):"):
		return "python"
	case strings.Contains(s, "__main__"):
		return "python"
	case strings.Contains(s, "fn main()") || strings.Contains(s, "println!"):
		return "rust"
	case hasSQLVerb(s):
		return "sql"
	case strings.Contains(s, "console.log") || strings.Contains(s, "=>"):
		return "javascript"
	}

	return ""
}

// hasSQLVerb reports whether the snippet opens with a SQL statement verb.
func hasSQLVerb(s string) bool {
	upper := strings.ToUpper(s)
	for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, verb) {
			return true
		}
	}
	return false
}

// tagFor converts an enry language name into a lowercase fence tag.
func tagFor(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
