package service

import (
	"errors"
	"strings"

	"github.com/lynplan/lynplan/internal/course"
	"github.com/lynplan/lynplan/internal/llm"
	"github.com/lynplan/lynplan/internal/match"
	"github.com/lynplan/lynplan/internal/normalize"
)

// ErrNoCoursesFound means nothing in the input survived matching. The
// usual cause is a photo where only headers and row labels were legible.
var ErrNoCoursesFound = errors.New("no courses found in input")

// Fuzzy matches below this score are treated as headers or noise.
const fuzzyAcceptThreshold = 0.45

// Resolver turns noisy course strings into official catalog courses.
type Resolver struct {
	Catalog *course.Catalog
	Matcher *match.Matcher
}

func NewResolver(catalog *course.Catalog) *Resolver {
	return &Resolver{Catalog: catalog, Matcher: match.New(catalog)}
}

// Diagnostic records how one input string was handled.
type Diagnostic struct {
	Input   string
	Matched string
	Score   float64
	Outcome Outcome
}

type Outcome string

const (
	OutcomeExact   Outcome = "exact"
	OutcomeFuzzy   Outcome = "fuzzy"
	OutcomeDropped Outcome = "dropped"
	OutcomeLabel   Outcome = "label"
)

// ResolveResult is the resolved course list plus per-input diagnostics.
type ResolveResult struct {
	Courses     []course.Resolved
	Diagnostics []Diagnostic
}

// Resolve matches each extracted item against the catalog: exact name
// or alias first, fuzzy second, drop below threshold. Input duplicates
// are skipped on first sight; the final list is deduplicated by
// official name, where a later entry refreshes the stored year.
func (r *Resolver) Resolve(items []llm.ExtractedCourse) (ResolveResult, error) {
	var res ResolveResult
	seenInputs := make(map[string]bool, len(items))
	byName := make(map[string]int)

	add := func(c course.Resolved) {
		key := strings.ToLower(c.Name)
		if idx, ok := byName[key]; ok {
			res.Courses[idx] = c
			return
		}
		byName[key] = len(res.Courses)
		res.Courses = append(res.Courses, c)
	}

	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		if seenInputs[lower] {
			continue
		}
		seenInputs[lower] = true

		if crs, ok := r.Catalog.LookupExact(name); ok {
			add(crs.Resolve(item.Grade, false))
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Input: name, Matched: crs.Name, Score: 1.0, Outcome: OutcomeExact,
			})
			continue
		}

		if cand, ok := r.Matcher.FindBest(name); ok && cand.Score >= fuzzyAcceptThreshold {
			add(cand.Course.Resolve(item.Grade, false))
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Input: name, Matched: cand.Course.Name, Score: cand.Score, Outcome: OutcomeFuzzy,
			})
			continue
		}

		res.Diagnostics = append(res.Diagnostics, Diagnostic{Input: name, Outcome: OutcomeDropped})
	}

	if len(res.Courses) == 0 {
		return res, ErrNoCoursesFound
	}
	return res, nil
}

// ResolveLines handles pasted or typed text instead of the vision
// output. Each line is screened as a possible header, normalized, then
// matched like any extracted item.
func (r *Resolver) ResolveLines(raw string) (ResolveResult, error) {
	var items []llm.ExtractedCourse
	var labels []Diagnostic
	for _, line := range normalize.SplitLines(raw) {
		if normalize.IsLabel(line) {
			labels = append(labels, Diagnostic{Input: line, Outcome: OutcomeLabel})
			continue
		}
		items = append(items, llm.ExtractedCourse{Name: normalize.Normalize(line)})
	}

	res, err := r.Resolve(items)
	res.Diagnostics = append(labels, res.Diagnostics...)
	return res, err
}

// ResolveManual resolves one user-entered course for direct plan edits.
// An official name or alias is taken as typed before any normalization
// runs, so catalog entries the cascade would rewrite (AP Physics 1,
// Multivariable Calculus) stay what the user asked for. Unknown names
// stay as typed, categorized by keyword with default credits, and are
// flagged as manually added.
func (r *Resolver) ResolveManual(name string, credits, year int) course.Resolved {
	if crs, ok := r.Catalog.LookupExact(name); ok {
		rc := crs.Resolve(year, true)
		if credits > 0 {
			rc.Credits = credits
		}
		return rc
	}

	normalized := normalize.Normalize(name)

	if crs, ok := r.Catalog.LookupExact(normalized); ok {
		rc := crs.Resolve(year, true)
		if credits > 0 {
			rc.Credits = credits
		}
		return rc
	}
	if cand, ok := r.Matcher.FindBest(normalized); ok && cand.Score >= fuzzyAcceptThreshold {
		rc := cand.Course.Resolve(year, true)
		if credits > 0 {
			rc.Credits = credits
		}
		return rc
	}

	if credits <= 0 {
		credits = DefaultCredits(normalized)
	}
	return course.Resolved{
		Name:          normalized,
		Credits:       credits,
		Category:      Categorize(normalized),
		Year:          year,
		ManuallyAdded: true,
	}
}
