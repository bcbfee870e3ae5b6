// Package requirements aggregates resolved courses into graduation
// progress for three systems: the Lynbrook 220-credit schema and the
// year-based UC and CSU a-g schemas.
package requirements

import (
	"fmt"

	"github.com/lynplan/lynplan/internal/course"
)

type System string

const (
	SystemLynbrook System = "Lynbrook"
	SystemUC       System = "UC A-G"
	SystemCSU      System = "CSU A-G"
)

// CourseEntry is one course counted toward a category.
type CourseEntry struct {
	Name    string
	Credits int
}

// Category is progress against a single requirement bucket. Earned and
// Remaining are credits for Lynbrook and years for UC/CSU.
type Category struct {
	Name      string
	Required  float64
	Earned    float64
	Remaining float64
	Courses   []CourseEntry
	Note      string
}

// Progress is the full picture for one system.
type Progress struct {
	System            System
	Unit              string
	TotalRequired     float64
	TotalEarned       float64
	TotalRemaining    float64
	Categories        []Category
	MeetsRequirements bool
	Warnings          []string
}

// AllProgress bundles the three systems computed from one course list.
type AllProgress struct {
	Lynbrook Progress
	UC       Progress
	CSU      Progress
}

const lynbrookTotalRequired = 220

type lynbrookRequirement struct {
	category course.Category
	required int
	starred  bool
	note     string
}

// Order matches the district planning sheet.
var lynbrookRequirements = []lynbrookRequirement{
	{course.CategorySocial, 30, false, "35 credits beginning 2030"},
	{course.CategoryEnglish, 40, false, ""},
	{course.CategoryMath, 20, false, "10 credits Algebra, 10 credits Geometry minimum"},
	{course.CategoryScience, 20, false, "10 credits Life Science, 10 credits Physical Science"},
	{course.CategoryPE, 20, false, ""},
	{course.CategoryHealth, 5, false, "Beginning 2030"},
	{course.CategoryLanguage, 10, true, ""},
	{course.CategoryArts, 10, true, ""},
	{course.CategoryApplied, 10, true, ""},
	{course.CategoryElectives, 70, false, "60 credits beginning 2030"},
}

// The starred areas: students must fully satisfy at least 2 of these 3.
var starredCategories = []course.Category{
	course.CategoryLanguage,
	course.CategoryArts,
	course.CategoryApplied,
}

type agRequirement struct {
	name     string
	category course.Category
	required float64
	note     string
}

var agRequirements = []agRequirement{
	{"(a) History/Social Science", course.CategorySocial, 2,
		"World History AND US History, or 1 sem US History & 1 sem Gov"},
	{"(b) English", course.CategoryEnglish, 4, ""},
	{"(c) Mathematics", course.CategoryMath, 3,
		"Through Algebra 2 (4 years recommended). Must complete 1 yr Geometry for UC"},
	{"(d) Laboratory Science", course.CategoryScience, 2,
		"1 year Life Science, 1 year Physical Science (3 recommended)"},
	{"(e) Language Other than English", course.CategoryLanguage, 2,
		"Same language (3 years recommended)"},
	{"(f) Visual & Performing Arts", course.CategoryArts, 1, ""},
	{"(g) College Prep Elective", course.CategoryApplied, 1,
		"Additional approved college prep course"},
}

const agTotalRequired = 15

// Lynbrook computes graduation progress against the 220-credit schema.
// Courses with a category outside the schema count toward Electives.
// Passing means 220 total credits earned and at least 2 of the 3
// starred areas individually complete.
func Lynbrook(courses []course.Resolved) Progress {
	type bucket struct {
		earned  int
		courses []CourseEntry
	}
	buckets := make(map[course.Category]*bucket, len(lynbrookRequirements))
	for _, req := range lynbrookRequirements {
		buckets[req.category] = &bucket{}
	}

	for _, c := range courses {
		b, ok := buckets[c.Category]
		if !ok {
			b = buckets[course.CategoryElectives]
		}
		b.earned += c.Credits
		b.courses = append(b.courses, CourseEntry{Name: c.Name, Credits: c.Credits})
	}

	totalEarned := 0
	categories := make([]Category, 0, len(lynbrookRequirements))
	for _, req := range lynbrookRequirements {
		b := buckets[req.category]
		remaining := req.required - b.earned
		if remaining < 0 {
			remaining = 0
		}
		totalEarned += b.earned

		name := string(req.category)
		if req.starred {
			name += "*"
		}
		categories = append(categories, Category{
			Name:      name,
			Required:  float64(req.required),
			Earned:    float64(b.earned),
			Remaining: float64(remaining),
			Courses:   b.courses,
			Note:      req.note,
		})
	}

	completedStarred := 0
	for _, req := range lynbrookRequirements {
		if !req.starred {
			continue
		}
		if buckets[req.category].earned >= req.required {
			completedStarred++
		}
	}

	var warnings []string
	if completedStarred < 2 {
		warnings = append(warnings, fmt.Sprintf(
			"Must complete 2 of 3 starred areas (%s, %s, %s). Currently completed: %d",
			starredCategories[0], starredCategories[1], starredCategories[2], completedStarred))
	}

	totalRemaining := lynbrookTotalRequired - totalEarned
	if totalRemaining < 0 {
		totalRemaining = 0
	}

	return Progress{
		System:            SystemLynbrook,
		Unit:              "credits",
		TotalRequired:     lynbrookTotalRequired,
		TotalEarned:       float64(totalEarned),
		TotalRemaining:    float64(totalRemaining),
		Categories:        categories,
		MeetsRequirements: totalEarned >= lynbrookTotalRequired && completedStarred >= 2,
		Warnings:          warnings,
	}
}

// UC computes a-g progress in years, where 10 credits make one year.
// Only courses carrying an a-g designator count. Grade data is not
// tracked, so the C-or-better condition is surfaced as a warning on
// every result.
func UC(courses []course.Resolved) Progress {
	return agProgress(courses, SystemUC)
}

// CSU mirrors UC; the CSU a-g schema is identical.
func CSU(courses []course.Resolved) Progress {
	return agProgress(courses, SystemCSU)
}

func agProgress(courses []course.Resolved, system System) Progress {
	type bucket struct {
		earned  float64
		courses []CourseEntry
	}
	buckets := make(map[string]*bucket, len(agRequirements))
	byCategory := make(map[course.Category]string, len(agRequirements))
	for _, req := range agRequirements {
		buckets[req.name] = &bucket{}
		byCategory[req.category] = req.name
	}

	for _, c := range courses {
		agName, ok := byCategory[c.Category]
		if !ok || c.AGDesignator == "" {
			continue
		}
		b := buckets[agName]
		b.earned += float64(c.Credits) / 10
		b.courses = append(b.courses, CourseEntry{Name: c.Name, Credits: c.Credits})
	}

	var totalYears float64
	categories := make([]Category, 0, len(agRequirements))
	for _, req := range agRequirements {
		b := buckets[req.name]
		remaining := req.required - b.earned
		if remaining < 0 {
			remaining = 0
		}
		totalYears += b.earned

		categories = append(categories, Category{
			Name:      req.name,
			Required:  req.required,
			Earned:    b.earned,
			Remaining: remaining,
			Courses:   b.courses,
			Note:      req.note,
		})
	}

	meets := totalYears >= agTotalRequired
	var warnings []string
	if !meets {
		warnings = append(warnings, fmt.Sprintf(
			"Need minimum %d year-long a-g courses. Currently have: %.1f years",
			agTotalRequired, totalYears))
	}
	warnings = append(warnings, "All a-g courses must be passed with C or better")

	totalRemaining := agTotalRequired - totalYears
	if totalRemaining < 0 {
		totalRemaining = 0
	}

	return Progress{
		System:            system,
		Unit:              "years",
		TotalRequired:     agTotalRequired,
		TotalEarned:       totalYears,
		TotalRemaining:    totalRemaining,
		Categories:        categories,
		MeetsRequirements: meets,
		Warnings:          warnings,
	}
}

// All computes the three systems from one course list.
func All(courses []course.Resolved) AllProgress {
	return AllProgress{
		Lynbrook: Lynbrook(courses),
		UC:       UC(courses),
		CSU:      CSU(courses),
	}
}
