package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lynplan/lynplan/internal/database"
)

// PlanRepo handles the saved plan. One row per official course name,
// case-insensitively.
type PlanRepo struct {
	db *sql.DB
}

func NewPlanRepo(db *sql.DB) *PlanRepo {
	return &PlanRepo{db: db}
}

func (r *PlanRepo) Upsert(ctx context.Context, c PlanCourse) error {
	now := database.Now()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO plan_courses(id, name, name_key, credits, category, ag_designator, year, manually_added, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(name_key) DO UPDATE SET
	 credits=excluded.credits,
	 category=excluded.category,
	 ag_designator=excluded.ag_designator,
	 year=excluded.year,
	 manually_added=excluded.manually_added,
	 updated_at=excluded.updated_at;
	`, c.ID, c.Name, nameKey(c.Name), c.Credits, c.Category, c.AGDesignator,
		c.Year, c.ManuallyAdded, now, now)
	return err
}

// Replace swaps the entire plan for a fresh scan result in one
// transaction.
func (r *PlanRepo) Replace(ctx context.Context, courses []PlanCourse) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM plan_courses`); err != nil {
			return err
		}
		now := database.Now()
		for _, c := range courses {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO plan_courses(id, name, name_key, credits, category, ag_designator, year, manually_added, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name_key) DO UPDATE SET
			 credits=excluded.credits,
			 category=excluded.category,
			 ag_designator=excluded.ag_designator,
			 year=excluded.year,
			 manually_added=excluded.manually_added,
			 updated_at=excluded.updated_at;
			`, c.ID, c.Name, nameKey(c.Name), c.Credits, c.Category, c.AGDesignator,
				c.Year, c.ManuallyAdded, now, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PlanRepo) List(ctx context.Context) ([]PlanCourse, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, credits, category, ag_designator, year, manually_added, created_at, updated_at
	FROM plan_courses ORDER BY year, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PlanCourse
	for rows.Next() {
		var c PlanCourse
		if err := rows.Scan(&c.ID, &c.Name, &c.Credits, &c.Category, &c.AGDesignator,
			&c.Year, &c.ManuallyAdded, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get fetches one course by name, case-insensitively.
func (r *PlanRepo) Get(ctx context.Context, name string) (*PlanCourse, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, credits, category, ag_designator, year, manually_added, created_at, updated_at
	FROM plan_courses WHERE name_key = ?`, nameKey(name))
	var c PlanCourse
	err := row.Scan(&c.ID, &c.Name, &c.Credits, &c.Category, &c.AGDesignator,
		&c.Year, &c.ManuallyAdded, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PlanRepo) Remove(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plan_courses WHERE name_key = ?`, nameKey(name))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PlanRepo) SetYear(ctx context.Context, name string, year int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
	UPDATE plan_courses SET year = ?, updated_at = ? WHERE name_key = ?`,
		year, database.Now(), nameKey(name))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PlanRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plan_courses`)
	return err
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
