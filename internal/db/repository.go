package db

import (
	"context"
	"database/sql"

	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

type Repository interface {
	UpsertSemester(ctx context.Context, year, term, totalUnits, totalPoints int, gpa float64, rows []model.CourseRow) (int64, error)
	ListSemesters(ctx context.Context) ([]model.SemesterRecord, error)
	SemesterCourses(ctx context.Context, semesterID int64) ([]model.CourseRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// UpsertSemester finalizes one (year, term). An existing record keeps its id
// and gets its aggregates updated; its course rows are fully replaced by the
// given ones, in order. Everything happens in one transaction so a reader
// never sees fresh totals with stale courses or the other way round.
func (r *repository) UpsertSemester(ctx context.Context, year, term, totalUnits, totalPoints int, gpa float64, rows []model.CourseRow) (int64, error) {
	if year < 1 || (term != 1 && term != 2) {
		return 0, errors.ErrInvalidKey
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var semesterID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM semesters WHERE year = ? AND term = ?`,
		year, term,
	).Scan(&semesterID)

	switch {
	case err == sql.ErrNoRows:
		res, err := tx.ExecContext(ctx,
			`INSERT INTO semesters (year, term, total_units, total_points, gpa) VALUES (?, ?, ?, ?, ?)`,
			year, term, totalUnits, totalPoints, gpa,
		)
		if err != nil {
			return 0, err
		}
		semesterID, err = res.LastInsertId()
		if err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		_, err = tx.ExecContext(ctx,
			`UPDATE semesters SET total_units = ?, total_points = ?, gpa = ? WHERE id = ?`,
			totalUnits, totalPoints, gpa, semesterID,
		)
		if err != nil {
			return 0, err
		}
		_, err = tx.ExecContext(ctx,
			`DELETE FROM semester_courses WHERE semester_id = ?`,
			semesterID,
		)
		if err != nil {
			return 0, err
		}
	}

	for _, row := range rows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO semester_courses (semester_id, code, units, grade, points) VALUES (?, ?, ?, ?, ?)`,
			semesterID, row.Code, row.Units, string(row.Grade), row.Points,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return semesterID, nil
}

func (r *repository) ListSemesters(ctx context.Context) ([]model.SemesterRecord, error) {
	query := `SELECT id, year, term, total_units, total_points, gpa
			  FROM semesters ORDER BY year ASC, term ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []model.SemesterRecord
	for rows.Next() {
		var rec model.SemesterRecord
		err := rows.Scan(&rec.ID, &rec.Year, &rec.Term,
			&rec.TotalUnits, &rec.TotalPoints, &rec.GPA)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, rec)
	}

	return semesters, rows.Err()
}

// SemesterCourses returns the rows of one finalized semester in the order
// they were upserted. An unknown id yields an empty slice, not an error.
func (r *repository) SemesterCourses(ctx context.Context, semesterID int64) ([]model.CourseRow, error) {
	query := `SELECT id, code, units, grade, points
			  FROM semester_courses WHERE semester_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.CourseRow
	for rows.Next() {
		var (
			c     model.CourseRow
			rowID int64
			grade string
		)
		if err := rows.Scan(&rowID, &c.Code, &c.Units, &grade, &c.Points); err != nil {
			return nil, err
		}
		c.ID = courseRowID(semesterID, rowID)
		c.Grade = model.Grade(grade)
		courses = append(courses, c)
	}

	return courses, rows.Err()
}
