package requirements

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lynplan/lynplan/internal/course"
)

func resolved(name string, credits int, cat course.Category, ag string) course.Resolved {
	return course.Resolved{Name: name, Credits: credits, Category: cat, AGDesignator: ag}
}

func TestLynbrookEmptyPlan(t *testing.T) {
	t.Parallel()

	p := Lynbrook(nil)
	require.Equal(t, SystemLynbrook, p.System)
	require.Equal(t, 220.0, p.TotalRequired)
	require.Equal(t, 0.0, p.TotalEarned)
	require.Equal(t, 220.0, p.TotalRemaining)
	require.False(t, p.MeetsRequirements)
	require.Len(t, p.Categories, 10)
	for _, c := range p.Categories {
		require.GreaterOrEqual(t, c.Remaining, 0.0)
		require.Empty(t, c.Courses)
	}
}

func TestLynbrookBucketsAndOverflow(t *testing.T) {
	t.Parallel()

	p := Lynbrook([]course.Resolved{
		resolved("Literature & Writing", 10, course.CategoryEnglish, "b"),
		resolved("World Literature & Writing", 10, course.CategoryEnglish, "b"),
		resolved("American Literature & Writing", 10, course.CategoryEnglish, "b"),
		resolved("Story and Style", 10, course.CategoryEnglish, "b"),
		resolved("AP English Literature & Composition", 10, course.CategoryEnglish, "b"),
	})

	var english Category
	for _, c := range p.Categories {
		if c.Name == "English" {
			english = c
		}
	}
	require.Equal(t, 50.0, english.Earned)
	require.Equal(t, 0.0, english.Remaining)
	require.Len(t, english.Courses, 5)
	require.Equal(t, 50.0, p.TotalEarned)
}

func TestLynbrookUnknownCategoryFallsToElectives(t *testing.T) {
	t.Parallel()

	p := Lynbrook([]course.Resolved{
		resolved("Mystery Seminar", 10, course.Category("Unknown"), ""),
	})

	last := p.Categories[len(p.Categories)-1]
	require.Equal(t, "Electives", last.Name)
	require.Equal(t, 10.0, last.Earned)
	require.Len(t, last.Courses, 1)
}

func TestLynbrookStarredGate(t *testing.T) {
	t.Parallel()

	// 220 total credits but only one starred area satisfied.
	courses := []course.Resolved{
		resolved("Social Studies Block", 30, course.CategorySocial, ""),
		resolved("English Block", 40, course.CategoryEnglish, ""),
		resolved("Math Block", 20, course.CategoryMath, ""),
		resolved("Science Block", 20, course.CategoryScience, ""),
		resolved("PE Block", 20, course.CategoryPE, ""),
		resolved("Health", 5, course.CategoryHealth, ""),
		resolved("Spanish 1", 10, course.CategoryLanguage, ""),
		resolved("Electives Block", 75, course.CategoryElectives, ""),
	}
	p := Lynbrook(courses)
	require.Equal(t, 220.0, p.TotalEarned)
	require.False(t, p.MeetsRequirements)
	require.Len(t, p.Warnings, 1)
	require.Contains(t, p.Warnings[0], "2 of 3 starred areas")
	require.Contains(t, p.Warnings[0], "Currently completed: 1")

	// Satisfying a second starred area flips the result.
	courses = append(courses, resolved("Art 1", 10, course.CategoryArts, ""))
	p = Lynbrook(courses)
	require.True(t, p.MeetsRequirements)
	require.Empty(t, p.Warnings)
}

func TestLynbrookStarredNamesMarked(t *testing.T) {
	t.Parallel()

	p := Lynbrook(nil)
	marked := map[string]bool{}
	for _, c := range p.Categories {
		marked[c.Name] = true
	}
	require.True(t, marked["World Language*"])
	require.True(t, marked["Visual & Performing Arts*"])
	require.True(t, marked["Applied Academics*"])
	require.True(t, marked["English"])
}

func TestUCYearConversion(t *testing.T) {
	t.Parallel()

	p := UC([]course.Resolved{
		resolved("Geometry", 10, course.CategoryMath, "c"),
		resolved("Algebra 2", 5, course.CategoryMath, "c"),
	})

	var math Category
	for _, c := range p.Categories {
		if c.Name == "(c) Mathematics" {
			math = c
		}
	}
	require.Equal(t, 1.5, math.Earned)
	require.Equal(t, 1.5, math.Remaining)
	require.Len(t, math.Courses, 2)
	require.Equal(t, 1.5, p.TotalEarned)
}

func TestUCSkipsNonAGCourses(t *testing.T) {
	t.Parallel()

	p := UC([]course.Resolved{
		resolved("PE 9", 10, course.CategoryPE, ""),
		resolved("Weight Training", 10, course.CategoryPE, ""),
		resolved("Journalism", 10, course.CategoryApplied, ""),
	})
	require.Equal(t, 0.0, p.TotalEarned)
	require.False(t, p.MeetsRequirements)
}

func TestUCGradeWarningAlwaysPresent(t *testing.T) {
	t.Parallel()

	courses := make([]course.Resolved, 0, 16)
	for i := 0; i < 16; i++ {
		courses = append(courses, resolved("English Course", 10, course.CategoryEnglish, "b"))
	}
	p := UC(courses)
	require.True(t, p.MeetsRequirements)
	require.Len(t, p.Warnings, 1)
	require.Contains(t, p.Warnings[0], "C or better")

	p = UC(nil)
	require.False(t, p.MeetsRequirements)
	require.Len(t, p.Warnings, 2)
	require.Contains(t, p.Warnings[0], "15 year-long")
	require.Contains(t, p.Warnings[1], "C or better")
}

func TestCSUMatchesUCExceptLabel(t *testing.T) {
	t.Parallel()

	courses := []course.Resolved{
		resolved("Biology", 10, course.CategoryScience, "d"),
		resolved("Spanish 2", 10, course.CategoryLanguage, "e"),
	}
	uc := UC(courses)
	csu := CSU(courses)

	require.Equal(t, SystemCSU, csu.System)
	csu.System = uc.System
	require.Equal(t, uc, csu)
}

func TestAllComputesThreeSystems(t *testing.T) {
	t.Parallel()

	all := All([]course.Resolved{
		resolved("Biology", 10, course.CategoryScience, "d"),
	})
	require.Equal(t, SystemLynbrook, all.Lynbrook.System)
	require.Equal(t, SystemUC, all.UC.System)
	require.Equal(t, SystemCSU, all.CSU.System)
	require.Equal(t, 10.0, all.Lynbrook.TotalEarned)
	require.Equal(t, 1.0, all.UC.TotalEarned)
}
