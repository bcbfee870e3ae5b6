package repository

import "time"

// PlanCourse represents one course row in the saved 4-year plan.
type PlanCourse struct {
	ID            string
	Name          string
	Credits       int
	Category      string
	AGDesignator  string
	Year          int
	ManuallyAdded bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
