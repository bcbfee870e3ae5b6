// Package match scores noisy course strings against the official
// catalog. Scores run 0 to 1 with fixed tiers for exact, containment,
// abbreviation and acronym matches before falling back to a blend of
// word-level and character-level similarity.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/lynplan/lynplan/internal/course"
)

// Candidate is one catalog course paired with its similarity score.
type Candidate struct {
	Course course.Course
	Score  float64
}

// Matcher matches free-form input against a fixed catalog.
type Matcher struct {
	catalog *course.Catalog
}

func New(catalog *course.Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// FindBest returns the highest-scoring catalog course for input, or
// ok=false when nothing clears the threshold. Exact name or alias hits
// short-circuit at score 1.0. Inputs of 3 characters or fewer use a
// lower threshold since abbreviations like "LA" and "PE" score low on
// character similarity. Ties keep the earliest catalog entry.
func (m *Matcher) FindBest(input string) (Candidate, bool) {
	norm := normalizeForComparison(input)
	if norm == "" {
		return Candidate{}, false
	}

	if crs, ok := m.catalog.LookupExact(norm); ok {
		return Candidate{Course: *crs, Score: 1.0}, true
	}

	threshold := 0.45
	if len(norm) <= 3 {
		threshold = 0.35
	}

	var best Candidate
	found := false
	for _, crs := range m.catalog.Courses() {
		score := m.scoreCourse(input, crs)
		if score >= threshold && score > best.Score {
			best = Candidate{Course: crs, Score: score}
			found = true
		}
	}
	return best, found
}

// FindTop returns up to n candidates scoring at least 0.4, best first.
// Equal scores preserve catalog order.
func (m *Matcher) FindTop(input string, n int) []Candidate {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var out []Candidate
	for _, crs := range m.catalog.Courses() {
		if score := m.scoreCourse(input, crs); score >= 0.4 {
			out = append(out, Candidate{Course: crs, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// scoreCourse scores input against a course name and all its aliases,
// keeping the best.
func (m *Matcher) scoreCourse(input string, crs course.Course) float64 {
	score := Similarity(input, crs.Name)
	for _, alias := range crs.Aliases {
		if s := Similarity(input, alias); s > score {
			score = s
		}
	}
	return score
}

// Similarity scores input against one official course name.
func Similarity(input, official string) float64 {
	inputNorm := normalizeForComparison(input)
	officialNorm := normalizeForComparison(official)

	if inputNorm == officialNorm {
		return 1.0
	}

	if strings.Contains(inputNorm, officialNorm) || strings.Contains(officialNorm, inputNorm) {
		return 0.9
	}

	// Abbreviations are intentional, so they outrank plain similarity.
	if isAbbreviation(inputNorm, officialNorm) || isAbbreviation(officialNorm, inputNorm) {
		return 0.9
	}

	if len(inputNorm) >= 2 && len(inputNorm) <= 3 {
		words := keyWords(officialNorm)

		var b strings.Builder
		for _, w := range words {
			b.WriteByte(w[0])
		}
		acronym := b.String()
		if acronym == inputNorm || strings.HasPrefix(acronym, inputNorm) || strings.HasPrefix(inputNorm, acronym) {
			return 0.85
		}

		for _, w := range words {
			if strings.HasPrefix(w, inputNorm) && len(w) >= len(inputNorm)+2 {
				return 0.8
			}
		}
	}

	wordSim := wordSimilarity(inputNorm, officialNorm)
	charSim := similarityScore(inputNorm, officialNorm)

	combined := wordSim*0.6 + charSim*0.4
	return max3(combined, wordSim, charSim)
}

// similarityScore is character-level similarity: 1 minus the edit
// distance over the longer length.
func similarityScore(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

func normalizeForComparison(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

var commonWords = map[string]bool{
	"the": true, "and": true, "or": true, "a": true, "an": true,
	"to": true, "of": true, "in": true, "on": true, "at": true,
	"for": true, "with": true, "&": true,
}

// keyWords keeps single-character words so abbreviations like "LA"
// survive.
func keyWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if !commonWords[w] {
			out = append(out, w)
		}
	}
	return out
}

// isAbbreviation reports whether short reads as an abbreviation of
// long, walking short's words against long's words in order.
func isAbbreviation(short, long string) bool {
	shortWords := keyWords(short)
	longWords := keyWords(long)
	if len(shortWords) == 0 {
		return false
	}

	shortIndex := 0
	matched := 0
	for _, longWord := range longWords {
		if shortIndex >= len(shortWords) {
			break
		}
		shortWord := shortWords[shortIndex]

		if longWord == shortWord {
			shortIndex++
			matched++
			continue
		}
		prefixLen := 4
		if len(longWord) < prefixLen {
			prefixLen = len(longWord)
		}
		if strings.HasPrefix(longWord, shortWord) || strings.HasPrefix(shortWord, longWord[:prefixLen]) {
			shortIndex++
			matched++
			continue
		}
		if len(shortWord) >= 2 && strings.Contains(longWord, shortWord) {
			shortIndex++
			matched++
			continue
		}
		if len(shortWord) >= 3 && len(longWord) >= len(shortWord) {
			end := len(shortWord) + 1
			if end > len(longWord) {
				end = len(longWord)
			}
			if similarityScore(shortWord, longWord[:end]) > 0.7 {
				shortIndex++
				matched++
				continue
			}
		}
	}

	if len(shortWords) <= 2 {
		return matched >= 1
	}
	need := float64(len(shortWords)) * 0.5
	if need > 2 {
		need = 2
	}
	return float64(matched) >= need || matched >= 2
}

// wordSimilarity is the fraction of key words shared between the two
// strings, with partial credit for containment and near-miss words.
func wordSimilarity(a, b string) float64 {
	wordsA := keyWords(a)
	wordsB := keyWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	total := len(wordsA)
	if len(wordsB) > total {
		total = len(wordsB)
	}

	var matches float64
	for _, wa := range wordsA {
		for _, wb := range wordsB {
			if wa == wb {
				matches++
				break
			}
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				matches += 0.7
				break
			}
			if len(wa) > 3 && len(wb) > 3 {
				if sim := similarityScore(wa, wb); sim > 0.7 {
					matches += sim
					break
				}
			}
		}
	}
	return matches / float64(total)
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
