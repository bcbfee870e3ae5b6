package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lynplan/lynplan/internal/course"
	"github.com/lynplan/lynplan/internal/database/repository"
	"github.com/lynplan/lynplan/internal/requirements"
)

// PlanService persists the 4-year plan and answers progress queries
// over it.
type PlanService struct {
	Plans    *repository.PlanRepo
	Resolver *Resolver
}

// ReplaceFromScan overwrites the stored plan with a scan result.
func (s *PlanService) ReplaceFromScan(ctx context.Context, courses []course.Resolved) error {
	rows := make([]repository.PlanCourse, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, toRow(c))
	}
	return s.Plans.Replace(ctx, rows)
}

// Add resolves one user-entered course and stores it. An existing
// entry with the same official name is updated in place; when the
// caller gives no year, an already-stored year survives the update.
func (s *PlanService) Add(ctx context.Context, name string, credits, year int) (course.Resolved, error) {
	rc := s.Resolver.ResolveManual(name, credits, year)
	if rc.Year == 0 {
		existing, err := s.Plans.Get(ctx, rc.Name)
		if err != nil {
			return course.Resolved{}, err
		}
		if existing != nil {
			rc.Year = existing.Year
		}
	}
	if err := s.Plans.Upsert(ctx, toRow(rc)); err != nil {
		return course.Resolved{}, err
	}
	return rc, nil
}

// Remove deletes a course by name. Returns false when the plan has no
// such course.
func (s *PlanService) Remove(ctx context.Context, name string) (bool, error) {
	return s.Plans.Remove(ctx, name)
}

// Clear deletes every stored course.
func (s *PlanService) Clear(ctx context.Context) error {
	return s.Plans.Clear(ctx)
}

// SetYear moves a course to a different grade year.
func (s *PlanService) SetYear(ctx context.Context, name string, year int) (bool, error) {
	return s.Plans.SetYear(ctx, name, year)
}

// List returns the stored plan ordered by year then name.
func (s *PlanService) List(ctx context.Context) ([]course.Resolved, error) {
	rows, err := s.Plans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]course.Resolved, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

// Progress computes all three requirement systems over the stored plan.
func (s *PlanService) Progress(ctx context.Context) (requirements.AllProgress, error) {
	courses, err := s.List(ctx)
	if err != nil {
		return requirements.AllProgress{}, err
	}
	return requirements.All(courses), nil
}

func toRow(c course.Resolved) repository.PlanCourse {
	return repository.PlanCourse{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Credits:       c.Credits,
		Category:      string(c.Category),
		AGDesignator:  c.AGDesignator,
		Year:          c.Year,
		ManuallyAdded: c.ManuallyAdded,
	}
}

func fromRow(row repository.PlanCourse) course.Resolved {
	return course.Resolved{
		Name:          row.Name,
		Credits:       row.Credits,
		Category:      course.Category(row.Category),
		AGDesignator:  row.AGDesignator,
		Year:          row.Year,
		ManuallyAdded: row.ManuallyAdded,
	}
}
