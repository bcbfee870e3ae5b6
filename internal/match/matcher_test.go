package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lynplan/lynplan/internal/course"
)

func TestSimilarityTiers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, Similarity("Biology", "Biology"))
	require.Equal(t, 1.0, Similarity("ap physics c mechanics", "AP Physics C: Mechanics"))

	require.Equal(t, 0.9, Similarity("Honors Biology", "Biology"))
	require.Equal(t, 0.9, Similarity("Calc BC", "AP Calculus BC"))

	require.Equal(t, 0.85, Similarity("wh", "World History"))

	require.Less(t, Similarity("Underwater Basket Weaving", "Biology"), 0.45)
}

func TestSimilarityBounds(t *testing.T) {
	t.Parallel()

	inputs := []string{"Bio", "Chem Honors", "zz", "AP Calc", "World Hist", ""}
	officials := []string{"Biology", "Chemistry Honors", "AP Calculus BC", "World History"}
	for _, in := range inputs {
		for _, off := range officials {
			s := Similarity(in, off)
			require.GreaterOrEqual(t, s, 0.0, "%q vs %q", in, off)
			require.LessOrEqual(t, s, 1.0, "%q vs %q", in, off)
		}
	}
}

func TestFindBestExactAlias(t *testing.T) {
	t.Parallel()

	m := New(course.NewCatalog())

	got, ok := m.FindBest("AP Calc-BC")
	require.True(t, ok)
	require.Equal(t, "AP Calculus BC", got.Course.Name)
	require.Equal(t, 1.0, got.Score)

	got, ok = m.FindBest("PE 9")
	require.True(t, ok)
	require.Equal(t, "PE 9", got.Course.Name)
	require.Equal(t, 1.0, got.Score)
}

func TestFindBestFuzzy(t *testing.T) {
	t.Parallel()

	m := New(course.NewCatalog())

	got, ok := m.FindBest("Bilogy")
	require.True(t, ok)
	require.Equal(t, "Biology", got.Course.Name)
	require.GreaterOrEqual(t, got.Score, 0.45)
	require.Less(t, got.Score, 1.0)
}

func TestFindBestShortInput(t *testing.T) {
	t.Parallel()

	m := New(course.NewCatalog())

	got, ok := m.FindBest("LA")
	require.True(t, ok)
	require.Equal(t, "Literature & Writing", got.Course.Name)
}

func TestFindBestRejectsGibberish(t *testing.T) {
	t.Parallel()

	m := New(course.NewCatalog())

	_, ok := m.FindBest("qqqq zzzz xxxx")
	require.False(t, ok)

	_, ok = m.FindBest("   ")
	require.False(t, ok)
}

func TestFindTopOrderedByScore(t *testing.T) {
	t.Parallel()

	m := New(course.NewCatalog())

	got := m.FindTop("AP Physics", 3)
	require.NotEmpty(t, got)
	require.LessOrEqual(t, len(got), 3)
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
	for _, c := range got {
		require.GreaterOrEqual(t, c.Score, 0.4)
	}
}

func TestFindTopEmptyInput(t *testing.T) {
	t.Parallel()

	m := New(course.NewCatalog())
	require.Empty(t, m.FindTop("", 3))
}
