package course

import "strings"

// Catalog is the exact-lookup index over the official course list. Build
// it once at startup and share it by pointer; it is never mutated after
// construction, so it is safe for concurrent readers.
type Catalog struct {
	courses []Course
	byName  map[string]*Course
}

// NewCatalog builds the index over the embedded official list.
func NewCatalog() *Catalog {
	return newCatalog(official)
}

func newCatalog(courses []Course) *Catalog {
	c := &Catalog{
		courses: courses,
		byName:  make(map[string]*Course, len(courses)*4),
	}
	for i := range c.courses {
		crs := &c.courses[i]
		c.byName[strings.ToLower(crs.Name)] = crs
		for _, alias := range crs.Aliases {
			// A later registration overwrites an earlier one. The alias
			// list is curated, so collisions are accepted rather than
			// reported.
			c.byName[strings.ToLower(alias)] = crs
		}
	}
	return c
}

// LookupExact finds a course by canonical name or alias. The input is
// trimmed and case-folded before lookup.
func (c *Catalog) LookupExact(text string) (*Course, bool) {
	crs, ok := c.byName[strings.ToLower(strings.TrimSpace(text))]
	return crs, ok
}

// Courses returns every catalog entry in declaration order. Callers must
// treat the result as read-only.
func (c *Catalog) Courses() []Course {
	return c.courses
}

// Len reports the number of official courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Resolve builds a Resolved record from a catalog entry.
func (crs *Course) Resolve(year int, manual bool) Resolved {
	return Resolved{
		Name:          crs.Name,
		Credits:       crs.Credits,
		Category:      crs.Category,
		AGDesignator:  crs.AGDesignator,
		Year:          year,
		ManuallyAdded: manual,
	}
}
