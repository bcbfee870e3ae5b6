// Package course holds the official course catalog and the record types
// shared by the resolution pipeline and the requirements engine.
package course

// Credit values. Semester courses and team-sport seasons are worth 5,
// full-year courses 10.
const (
	CreditSemester = 5
	CreditYear     = 10
)

// Category is one of the fixed subject-area buckets.
type Category string

const (
	CategoryEnglish   Category = "English"
	CategoryMath      Category = "Math"
	CategoryScience   Category = "Science"
	CategorySocial    Category = "Social Studies"
	CategoryPE        Category = "Physical Education"
	CategoryLanguage  Category = "World Language"
	CategoryArts      Category = "Visual & Performing Arts"
	CategoryApplied   Category = "Applied Academics"
	CategoryHealth    Category = "Health"
	CategoryElectives Category = "Electives"
)

// Course is one official catalog entry. The catalog is immutable after
// startup; Aliases are the known abbreviations and misspellings seen on
// planning sheets.
type Course struct {
	Code         string
	Name         string
	Credits      int
	Category     Category
	AGDesignator string // "a".."g", empty when not a-g eligible
	Aliases      []string
}

// Resolved is one course attributed to a student plan, produced per OCR
// pass or by a manual add. Lists of Resolved are replaced wholesale,
// never edited in place.
type Resolved struct {
	Name          string
	Credits       int
	Category      Category
	AGDesignator  string
	Year          int // 9..12, 0 when unknown
	ManuallyAdded bool
}
