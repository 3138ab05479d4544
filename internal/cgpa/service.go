package cgpa

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Chinex4/unipaddy-app/internal/compute"
	"github.com/Chinex4/unipaddy-app/internal/db"
	"github.com/Chinex4/unipaddy-app/internal/draft"
	"github.com/Chinex4/unipaddy-app/internal/logger"
	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

// maxUnits is the editing boundary's credit-load cap. Storage below this
// layer accepts anything; zero means "unset" and stays legal.
const maxUnits = 18

// Service is the editing flow's controller: one draft, one ledger, no shared
// state beyond the injected handles.
type Service struct {
	repo   db.Repository
	drafts draft.Store
	log    zerolog.Logger
}

func NewService(repo db.Repository, drafts draft.Store) *Service {
	return &Service{
		repo:   repo,
		drafts: drafts,
		log:    logger.Get(),
	}
}

func (s *Service) LoadDraft(ctx context.Context) ([]model.CourseRow, error) {
	return s.drafts.Load(ctx)
}

// SaveDraft validates and normalizes the rows, then fully replaces the
// persisted draft. Returned rows carry assigned ids and recomputed points.
func (s *Service) SaveDraft(ctx context.Context, rows []model.CourseRow) ([]model.CourseRow, error) {
	normalized, err := s.normalize(rows)
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, normalized); err != nil {
		return nil, err
	}
	s.log.Debug().Int("courses", len(normalized)).Msg("Draft saved")
	return normalized, nil
}

// AddDraftRow appends a blank row to the draft and persists it.
func (s *Service) AddDraftRow(ctx context.Context) ([]model.CourseRow, error) {
	rows, err := s.drafts.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows = append(rows, model.NewCourseRow(uuid.NewString()))
	if err := s.drafts.Save(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Summarize aggregates rows without touching storage. Points are recomputed,
// stale values never survive a pass through here.
func (s *Service) Summarize(rows []model.CourseRow) model.SemesterSummary {
	return compute.Summarize(rows)
}

// Finalize commits rows under (year, term). When rows is nil the current
// draft is used. The draft itself is left untouched; clearing or reloading it
// is the caller's move.
func (s *Service) Finalize(ctx context.Context, year, term int, rows []model.CourseRow) (*model.FinalizeResponse, error) {
	if year < 1 || (term != 1 && term != 2) {
		return nil, errors.ErrInvalidKey
	}

	if rows == nil {
		var err error
		rows, err = s.drafts.Load(ctx)
		if err != nil {
			return nil, err
		}
	}

	normalized, err := s.normalize(rows)
	if err != nil {
		return nil, err
	}

	summary := compute.Summarize(normalized)
	id, err := s.repo.UpsertSemester(ctx, year, term,
		summary.TotalUnits, summary.TotalPoints, summary.GPA, normalized)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("year", year).
		Int("term", term).
		Int64("semester_id", id).
		Float64("gpa", summary.GPA).
		Msg("Semester finalized")

	return &model.FinalizeResponse{
		Semester: model.SemesterRecord{
			ID:          id,
			Year:        year,
			Term:        term,
			TotalUnits:  summary.TotalUnits,
			TotalPoints: summary.TotalPoints,
			GPA:         summary.GPA,
		},
		Summary: summary,
		Class:   compute.Classify(summary.GPA),
	}, nil
}

func (s *Service) Semesters(ctx context.Context) ([]model.SemesterRecord, error) {
	return s.repo.ListSemesters(ctx)
}

func (s *Service) Courses(ctx context.Context, semesterID int64) ([]model.CourseRow, error) {
	return s.repo.SemesterCourses(ctx, semesterID)
}

// Reopen copies a finalized semester's rows back into the draft for editing.
func (s *Service) Reopen(ctx context.Context, semesterID int64) ([]model.CourseRow, error) {
	semesters, err := s.repo.ListSemesters(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, rec := range semesters {
		if rec.ID == semesterID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.ErrSemesterNotFound
	}

	rows, err := s.repo.SemesterCourses(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, rows); err != nil {
		return nil, err
	}

	s.log.Info().Int64("semester_id", semesterID).Int("courses", len(rows)).Msg("Semester reopened into draft")
	return rows, nil
}

// Overall sums every finalized semester's totals into the cumulative GPA.
// Per-semester totals are trusted as reconciled by the upsert path; nothing
// is re-derived from course rows and nothing is cached.
func (s *Service) Overall(ctx context.Context) (*model.CumulativeSummary, error) {
	semesters, err := s.repo.ListSemesters(ctx)
	if err != nil {
		return nil, err
	}

	sum := &model.CumulativeSummary{Semesters: len(semesters)}
	for _, rec := range semesters {
		sum.TotalUnits += rec.TotalUnits
		sum.TotalPoints += rec.TotalPoints
	}
	if sum.TotalUnits > 0 {
		sum.CGPA = compute.Round2(float64(sum.TotalPoints) / float64(sum.TotalUnits))
	}
	sum.Class = compute.Classify(sum.CGPA)
	return sum, nil
}

// normalize enforces the editing boundary's rules and rewrites every derived
// field: missing ids are assigned, points always recomputed.
func (s *Service) normalize(rows []model.CourseRow) ([]model.CourseRow, error) {
	out := make([]model.CourseRow, len(rows))
	for i, r := range rows {
		if !r.Grade.Valid() {
			return nil, errors.ValidationError{
				Field:   fmt.Sprintf("courses[%d].grade", i),
				Value:   string(r.Grade),
				Message: "must be one of A, B, C, D, E, F",
			}
		}
		if r.Units < 0 || r.Units > maxUnits {
			return nil, errors.ValidationError{
				Field:   fmt.Sprintf("courses[%d].units", i),
				Value:   r.Units,
				Message: fmt.Sprintf("must be between 0 and %d", maxUnits),
			}
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		r.Points = compute.CoursePoints(r.Units, r.Grade)
		out[i] = r
	}
	return out, nil
}
