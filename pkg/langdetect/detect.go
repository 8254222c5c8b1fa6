// Package langdetect resolves the display language of fenced code
// blocks. An explicit fence info string always wins; otherwise the
// content is classified with go-enry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langText = "text"

// classifierCandidates bounds the enry classifier to languages that
// plausibly appear in fenced blocks.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Language returns the language tag for a fenced code block. info is
// the fence info string (possibly empty); content is the block body.
func Language(info string, content []byte) string {
	if fields := strings.Fields(info); len(fields) > 0 {
		return normalize(fields[0])
	}
	return Detect(content)
}

// Detect classifies code content without an info string. It returns
// "text" when detection fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPrefix(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPrefix short-circuits the classifier for two unambiguous
// shapes that dominate real documents.
func detectByPrefix(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return "go"
	}
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return "json"
	}
	return ""
}

// normalize converts enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
