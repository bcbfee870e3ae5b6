package course

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupExact(t *testing.T) {
	t.Parallel()
	cat := NewCatalog()

	crs, ok := cat.LookupExact("AP Calculus BC")
	require.True(t, ok)
	require.Equal(t, "AP Calculus BC", crs.Name)

	// aliases and case folding share one index
	for _, input := range []string{"calc bc", "CALC-BC", "  AP Calc BC  "} {
		crs, ok = cat.LookupExact(input)
		require.True(t, ok, "input %q", input)
		require.Equal(t, "AP Calculus BC", crs.Name)
	}

	_, ok = cat.LookupExact("Underwater Basket Weaving")
	require.False(t, ok)
	_, ok = cat.LookupExact("")
	require.False(t, ok)
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	t.Parallel()
	cat := NewCatalog()
	require.NotZero(t, cat.Len())

	seen := make(map[string]bool, cat.Len())
	for _, crs := range cat.Courses() {
		require.NotEmpty(t, crs.Name)
		require.Contains(t, []int{CreditSemester, CreditYear}, crs.Credits)
		require.NotEmpty(t, string(crs.Category))
		if crs.AGDesignator != "" {
			require.Contains(t, "abcdefg", crs.AGDesignator, "course %s", crs.Name)
		}
		key := strings.ToLower(crs.Name)
		require.False(t, seen[key], "duplicate name %s", crs.Name)
		seen[key] = true
	}
}

func TestResolveCopiesCatalogFields(t *testing.T) {
	t.Parallel()
	cat := NewCatalog()
	crs, ok := cat.LookupExact("Biology")
	require.True(t, ok)

	r := crs.Resolve(10, true)
	require.Equal(t, "Biology", r.Name)
	require.Equal(t, CreditYear, r.Credits)
	require.Equal(t, CategoryScience, r.Category)
	require.Equal(t, "d", r.AGDesignator)
	require.Equal(t, 10, r.Year)
	require.True(t, r.ManuallyAdded)
}
