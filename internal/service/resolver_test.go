package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lynplan/lynplan/internal/course"
	"github.com/lynplan/lynplan/internal/llm"
)

func newTestResolver() *Resolver {
	return NewResolver(course.NewCatalog())
}

func TestResolveLinesAbbreviations(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	res, err := r.ResolveLines("Lit/Writing\nAP Calc-BC\nPE 9")
	require.NoError(t, err)
	require.Len(t, res.Courses, 3)

	names := make([]string, 0, len(res.Courses))
	for _, c := range res.Courses {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"Literature & Writing", "AP Calculus BC", "PE 9"}, names)
}

func TestResolveLinesAllLabels(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	_, err := r.ResolveLines("9th Grade\n10th Grade\nSocial Studies\nElectives\nWorld Language")
	require.ErrorIs(t, err, ErrNoCoursesFound)

	res, _ := r.ResolveLines("9th Grade\nSocial Studies")
	for _, d := range res.Diagnostics {
		require.Equal(t, OutcomeLabel, d.Outcome)
	}
}

func TestResolveDedupesVariants(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	res, err := r.Resolve([]llm.ExtractedCourse{
		{Name: "AP Physics C Mech", Grade: 11},
		{Name: "AP Physics C: Mechanics", Grade: 11},
		{Name: "AP Phys C Mechanics", Grade: 11},
	})
	require.NoError(t, err)
	require.Len(t, res.Courses, 1)
	require.Equal(t, "AP Physics C: Mechanics", res.Courses[0].Name)
	require.Equal(t, 11, res.Courses[0].Year)
}

func TestResolveLaterEntryRefreshesYear(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	res, err := r.Resolve([]llm.ExtractedCourse{
		{Name: "Biology", Grade: 9},
		{Name: "Bio H", Grade: 10},
	})
	require.NoError(t, err)
	t.Log("resolved", len(res.Courses), "courses")
	for _, c := range res.Courses {
		require.NotZero(t, c.Year)
	}
}

func TestResolveSkipsDuplicateInputs(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	res, err := r.Resolve([]llm.ExtractedCourse{
		{Name: "Biology", Grade: 9},
		{Name: "biology", Grade: 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Courses, 1)
	// The second spelling of the same input is skipped, so the first
	// grade wins.
	require.Equal(t, 9, res.Courses[0].Year)
}

func TestResolveDiagnostics(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	res, err := r.Resolve([]llm.ExtractedCourse{
		{Name: "PE 9"},
		{Name: "Bilogy"},
		{Name: "qqqq zzzz"},
	})
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 3)
	require.Equal(t, OutcomeExact, res.Diagnostics[0].Outcome)
	require.Equal(t, OutcomeFuzzy, res.Diagnostics[1].Outcome)
	require.Equal(t, "Biology", res.Diagnostics[1].Matched)
	require.Equal(t, OutcomeDropped, res.Diagnostics[2].Outcome)
}

func TestResolveManualCatalogCourse(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	rc := r.ResolveManual("pe 9", 0, 9)
	require.Equal(t, "PE 9", rc.Name)
	require.Equal(t, course.CategoryPE, rc.Category)
	require.Equal(t, 10, rc.Credits)
	require.True(t, rc.ManuallyAdded)
}

func TestResolveManualExactNameWins(t *testing.T) {
	t.Parallel()

	r := newTestResolver()

	// Official names the cascade would rewrite must resolve as typed.
	// "AP Physics 1" hits the Physics C default if normalized first, and
	// "Multivariable Calculus" gets swallowed by the AP Calculus rules.
	cases := map[string]string{
		"AP Physics 1":           "AP Physics 1",
		"AP Physics 2":           "AP Physics 2",
		"ap phys 1":              "AP Physics 1",
		"Multivariable Calculus": "Multivariable Calculus",
	}
	for in, want := range cases {
		rc := r.ResolveManual(in, 0, 11)
		require.Equal(t, want, rc.Name, "input %q", in)
		require.True(t, rc.ManuallyAdded)
		require.Equal(t, 11, rc.Year)
	}
}

func TestResolveManualUncatalogedCourse(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	rc := r.ResolveManual("Marine Biology Research", 0, 12)
	require.Equal(t, course.CategoryScience, rc.Category)
	require.Equal(t, 10, rc.Credits)
	require.True(t, rc.ManuallyAdded)
	require.Equal(t, 12, rc.Year)
}

func TestCategorizeFallback(t *testing.T) {
	t.Parallel()

	cases := map[string]course.Category{
		"Intro to Civics":        course.CategorySocial,
		"Creative Writing":       course.CategoryEnglish,
		"Discrete Math":          course.CategoryMath,
		"Marine Science":         course.CategoryScience,
		"Athletics Block":        course.CategoryPE,
		"Latin 1":                course.CategoryLanguage,
		"Jazz Band":              course.CategoryArts,
		"Business Law":           course.CategoryApplied,
		"Mystery Seminar":        course.CategoryElectives,
		"American Sign Language": course.CategoryLanguage,
	}
	for in, want := range cases {
		require.Equal(t, want, Categorize(in), "input %q", in)
	}
}

func TestDefaultCredits(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, DefaultCredits("Economics"))
	require.Equal(t, 5, DefaultCredits("Health"))
	require.Equal(t, 5, DefaultCredits("Golf"))
	require.Equal(t, 5, DefaultCredits("Cross Country"))
	require.Equal(t, 10, DefaultCredits("Biology"))
	require.Equal(t, 10, DefaultCredits("Mystery Seminar"))
}
