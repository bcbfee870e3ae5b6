package service

import (
	"strings"

	"github.com/lynplan/lynplan/internal/course"
)

// Keyword buckets for courses the catalog does not know. Checked in
// order; the first bucket with a hit wins.
var categoryKeywords = []struct {
	category course.Category
	keywords []string
}{
	{course.CategorySocial, []string{
		"history", "government", "economics", "ethnic studies",
		"social studies", "civics",
	}},
	{course.CategoryEnglish, []string{
		"english", "literature", "writing", "composition",
		"language arts", "eld",
	}},
	{course.CategoryMath, []string{
		"math", "algebra", "geometry", "calculus", "trigonometry",
		"precalc", "statistics", "multivariable", "differential equations",
	}},
	{course.CategoryScience, []string{
		"biology", "chemistry", "physics", "science", "physiology",
		"anatomy", "environmental", "stem",
	}},
	{course.CategoryPE, []string{
		"pe ", "physical education", "racquet", "weight training",
		"total fitness", "team sport", "athletics",
	}},
	{course.CategoryLanguage, []string{
		"spanish", "french", "german", "chinese", "mandarin",
		"japanese", "korean", "italian", "latin",
	}},
	{course.CategoryArts, []string{
		"art", "music", "theatre", "theater", "dance", "band",
		"orchestra", "choir", "chorus", "drama",
	}},
	{course.CategoryApplied, []string{
		"computer", "programming", "journalism", "yearbook",
		"stagecraft", "engineering", "business", "culinary", "law",
		"construction", "media",
	}},
	{course.CategoryHealth, []string{"health"}},
}

// Categorize assigns a subject bucket to a course name by keyword.
// Anything unrecognized is an elective. The World Language bucket has
// one extra rule: "language" counts unless the name is an English or
// arts course.
func Categorize(name string) course.Category {
	lower := strings.ToLower(name)
	for _, bucket := range categoryKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.category
			}
		}
		if bucket.category == course.CategoryLanguage &&
			strings.Contains(lower, "language") &&
			!strings.Contains(lower, "english") && !strings.Contains(lower, "arts") {
			return course.CategoryLanguage
		}
	}
	return course.CategoryElectives
}

var semesterKeywords = []string{
	"economics", "government", "ethnic studies", "health",
}

var seasonSports = []string{
	"basketball", "volleyball", "soccer", "wrestling", "softball",
	"baseball", "tennis", "golf", "swimming", "diving", "track",
	"cross country", "team sport",
}

// DefaultCredits guesses credits for an uncataloged course: semester
// courses and season sports earn 5, everything else a full year's 10.
func DefaultCredits(name string) int {
	lower := strings.ToLower(name)
	for _, kw := range semesterKeywords {
		if strings.Contains(lower, kw) {
			return course.CreditSemester
		}
	}
	for _, kw := range seasonSports {
		if strings.Contains(lower, kw) {
			return course.CreditSemester
		}
	}
	return course.CreditYear
}
