package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseExtractedCoursesWrapped(t *testing.T) {
	t.Parallel()

	got, err := parseExtractedCourses(`{"courses":[{"name":"Biology","grade":9},{"name":"PE 9","grade":9}]}`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, ExtractedCourse{Name: "Biology", Grade: 9}, got[0])
}

func TestParseExtractedCoursesBareArrayAndStrings(t *testing.T) {
	t.Parallel()

	got, err := parseExtractedCourses(`["Biology", {"name":"PE 9","grade":10}]`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Biology", got[0].Name)
	require.Equal(t, 0, got[0].Grade)
	require.Equal(t, 10, got[1].Grade)
}

func TestParseExtractedCoursesInvalidGradeResets(t *testing.T) {
	t.Parallel()

	got, err := parseExtractedCourses(`{"courses":[{"name":"Biology","grade":13},{"name":"Chemistry","grade":8}]}`)
	require.NoError(t, err)
	require.Equal(t, 0, got[0].Grade)
	require.Equal(t, 0, got[1].Grade)
}

func TestParseExtractedCoursesSkipsEmptyNames(t *testing.T) {
	t.Parallel()

	got, err := parseExtractedCourses(`{"courses":[{"name":"  ","grade":9},{"name":"Biology","grade":9}]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestParseExtractedCoursesGarbage(t *testing.T) {
	t.Parallel()

	_, err := parseExtractedCourses(`not json at all`)
	require.Error(t, err)
}
