// Package langdetect guesses the language of a code sample. It is used for
// code blocks whose opening fence carries no info string, so the highlighter
// can pick matching keyword and type sets.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language tags returned by Detect.
const (
	LangSwift      = "swift"
	LangGo         = "go"
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangJava       = "java"
	LangKotlin     = "kotlin"
	LangRust       = "rust"
	LangJSON       = "json"
	LangYAML       = "yaml"
	LangBash       = "bash"
	LangText       = "text"
)

// classifierCandidates restricts the enry classifier to languages the deck
// actually carries.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Swift", "Go", "Python", "JavaScript", "TypeScript",
	"Java", "Kotlin", "Rust", "Shell", "JSON", "YAML",
}

// rule is a cheap textual fingerprint tried before the classifier.
type rule struct {
	lang  string
	match func(content string, trimmed string) bool
}

// rules are ordered from most to least specific.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rules = []rule{
	{lang: LangGo, match: func(_, trimmed string) bool {
		return strings.HasPrefix(trimmed, "package ") || strings.Contains(trimmed, ":= ")
	}},
	{lang: LangSwift, match: func(content, _ string) bool {
		return containsAny(content, "import UIKit", "import SwiftUI", "import Foundation",
			"guard let ", "if let ", "-> Void", "@objc ", "override func ", "weak var ")
	}},
	{lang: LangKotlin, match: func(content, _ string) bool {
		return startsAnyLine(content, "fun ", "val ", "data class ", "private fun ", "override fun ") ||
			strings.Contains(content, "companion object")
	}},
	{lang: LangRust, match: func(content, _ string) bool {
		return containsAny(content, "fn main()", "println!", "let mut ", "&mut ") ||
			startsAnyLine(content, "impl ", "pub fn ", "use std")
	}},
	{lang: LangJava, match: func(content, _ string) bool {
		return containsAny(content, "public static void", "System.out.", "public class ", "private final ")
	}},
	{lang: LangPython, match: func(content, _ string) bool {
		if strings.Contains(content, "def ") && strings.Contains(content, "):") {
			return true
		}
		return containsAny(content, "__name__", "__init__", "self.")
	}},
	{lang: LangJSON, match: func(_, trimmed string) bool {
		return (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
			strings.Contains(trimmed, `":`)
	}},
	{lang: LangJavaScript, match: func(content, _ string) bool {
		return containsAny(content, "=>", "console.log", "function ", "const ")
	}},
	{lang: LangSwift, match: func(content, _ string) bool {
		return startsAnyLine(content, "func ", "let ", "var ", "struct ", "class ", "protocol ",
			"enum ", "extension ", "private ", "static ")
	}},
	{lang: LangYAML, match: func(content, _ string) bool {
		return yamlKeys(content) >= 2
	}},
}

// Detect returns the language tag for content, or LangText when nothing is
// recognized with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return LangText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	text := string(content)
	trimmed := strings.TrimSpace(text)
	for _, r := range rules {
		if r.match(text, trimmed) {
			return r.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangText
}

// Hint returns the detected language of code, or "" when it is unknown.
func Hint(code string) string {
	if lang := Detect([]byte(code)); lang != LangText {
		return lang
	}
	return ""
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// startsAnyLine reports whether any line, ignoring indentation, begins with
// one of the prefixes.
func startsAnyLine(content string, prefixes ...string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimLeft(line, " \t")
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				return true
			}
		}
	}
	return false
}

// yamlKeys counts lines that look like "key: value" or a list item.
func yamlKeys(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "- ") {
			count++
			continue
		}
		if strings.Contains(line, ": ") && !strings.ContainsAny(line, "({;") && !strings.HasPrefix(line, `"`) {
			count++
		}
	}
	return count
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return LangBash
	case "TypeScript":
		return LangJavaScript
	}
	return strings.ToLower(lang)
}
