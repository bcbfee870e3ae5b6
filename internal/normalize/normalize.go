// Package normalize turns noisy OCR text into the most likely canonical
// course label and filters out the structural headers that planning
// sheets are full of.
package normalize

import (
	"regexp"
	"strings"
)

// Short tokens that look like labels but are legitimate stand-alone
// course abbreviations. Checked before every rejection rule.
var validAbbreviations = []string{"la", "l.a.", "lit", "pe", "pe9", "pe10", "pe 9", "pe 10", "ap"}

// Headers and row labels that must never be treated as courses.
var ignoreList = []string{
	"9th grade", "10th grade", "11th grade", "12th grade",
	"9th", "10th", "11th", "12th",
	"grade",
	"economics &",
	"social studies",
	"electives",
	"applied academics",
	"world language",
	"visual & performing arts",
	"visual and performing arts",
}

// Keywords that mark a string as a real course even when it resembles a
// header row.
var courseKeywords = []string{
	"literature", "writing", "calculus", "algebra", "geometry",
	"chemistry", "biology", "physics", "history", "government",
	"economics", "spanish", "french", "mandarin", "chinese", "japanese",
	"story", "style", "pe ", "pe9", "pe10", "inclusion",
	"racquet", "weight training", "fitness", "statistics", "linear",
}

var gradePattern = regexp.MustCompile(`^\d+(st|nd|rd|th)?\s*(grade)?$`)

func hasValidAbbreviation(lower string) bool {
	for _, abbr := range validAbbreviations {
		if lower == abbr || strings.HasPrefix(lower, abbr+" ") {
			return true
		}
	}
	return false
}

func onAllowList(lower string) bool {
	for _, abbr := range validAbbreviations {
		if lower == abbr {
			return true
		}
	}
	return false
}

// IsLabel reports whether text is a structural header or label rather
// than a course. Strings under 2 characters are always labels; 2-char
// strings are labels unless allow-listed.
func IsLabel(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))

	if hasValidAbbreviation(lower) {
		return false
	}
	for _, kw := range courseKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, ign := range ignoreList {
		if lower == ign || strings.Contains(lower, ign) {
			return true
		}
	}
	if gradePattern.MatchString(lower) {
		return true
	}
	// Bare subject-row headers. "Lit/Writing" and friends never reach
	// here thanks to the keyword check above.
	switch lower {
	case "math", "science", "english":
		if len(text) < 10 {
			return true
		}
	}
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 {
		return true
	}
	if len(trimmed) == 2 && !onAllowList(lower) {
		return true
	}
	return false
}

var ocrFixes = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)Lit\s*/\s*Writing`), "Literature & Writing"},
	{regexp.MustCompile(`(?i)Lit\s*/\s*Wnting`), "Literature & Writing"},
	{regexp.MustCompile(`(?i)Llt\s*/\s*Writing`), "Literature & Writing"},
	{regexp.MustCompile(`(?i)stern`), "STEM"},
}

// CleanOCR fixes the garbled substrings the OCR pass produces often
// enough to special-case.
func CleanOCR(text string) string {
	out := text
	for _, fix := range ocrFixes {
		out = fix.pattern.ReplaceAllString(out, fix.replacement)
	}
	return strings.TrimSpace(out)
}

// SplitLines splits a multi-line cell into candidate course strings.
// Fragments that are both very short and not allow-listed are dropped so
// stray characters never become entries.
func SplitLines(raw string) []string {
	splitAbbrs := []string{"la", "l.a.", "lit", "pe", "pe9", "pe10"}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		allowed := false
		for _, abbr := range splitAbbrs {
			if lower == abbr || strings.HasPrefix(lower, abbr+" ") {
				allowed = true
				break
			}
		}
		if len(line) >= 2 && (len(line) > 3 || allowed) {
			out = append(out, line)
		}
	}
	return out
}
