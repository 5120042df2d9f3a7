// Package importer populates the database from tabular datasets, resolving
// natural keys (teacher name, student email, course title) to the surrogate
// ids the store assigns on insert.
package importer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/thebtf/gradebook/internal/dataset"
	"github.com/thebtf/gradebook/internal/db"
)

// Importer performs natural-key bulk imports against a store.
type Importer struct {
	store *db.Store
}

// New creates an importer bound to the given store.
func New(store *db.Store) *Importer {
	return &Importer{store: store}
}

// Report describes what an import run did. When the target tables were
// already populated, Skipped is true and every count is zero.
type Report struct {
	Skipped     bool
	Teachers    int
	Students    int
	Courses     int
	Enrollments int
	// Dropped lists human-readable diagnostics for reference rows whose
	// natural keys did not resolve.
	Dropped []string
}

// ImportRoster inserts teachers, then students referencing them by teacher
// name. Students whose teacher name does not resolve are dropped with a
// diagnostic. The whole run commits as a single transaction; if the teachers
// table is already populated, nothing is touched.
func (im *Importer) ImportRoster(ctx context.Context, teachers []dataset.TeacherRecord, students []dataset.StudentRecord) (*Report, error) {
	populated, err := im.populated(ctx, &db.Teacher{})
	if err != nil {
		return nil, fmt.Errorf("check teachers table: %w", err)
	}
	if populated {
		log.Info().Msg("Database already contains data, skipping import")
		return &Report{Skipped: true}, nil
	}

	report := &Report{}
	err = im.store.Transaction(ctx, func(tx *gorm.DB) error {
		// Insert teachers and build the name-to-id mapping. The map lives
		// only for this run; natural keys are never persisted as links.
		teacherIDs := make(map[string]int64, len(teachers))
		for _, rec := range teachers {
			row := db.Teacher{Name: rec.Name, Subject: rec.Subject}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert teacher %q: %w", rec.Name, err)
			}
			teacherIDs[row.Name] = row.ID
			report.Teachers++
		}

		// Insert students, resolving each teacher reference.
		for _, rec := range students {
			teacherID, ok := teacherIDs[rec.TeacherName]
			if !ok {
				diag := fmt.Sprintf("teacher %q not found, skipping student %q", rec.TeacherName, rec.Name)
				log.Warn().
					Str("teacher", rec.TeacherName).
					Str("student", rec.Name).
					Msg("Missing reference, skipped")
				report.Dropped = append(report.Dropped, diag)
				continue
			}
			row := db.Student{
				Name:      rec.Name,
				Grade:     sql.NullInt64{Int64: rec.Grade, Valid: true},
				TeacherID: sql.NullInt64{Int64: teacherID, Valid: true},
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert student %q: %w", rec.Name, err)
			}
			report.Students++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("teachers", report.Teachers).
		Int("students", report.Students).
		Int("dropped", len(report.Dropped)).
		Msg("Roster import succeeded")
	return report, nil
}

// ImportCatalog inserts students and courses, then enrollments referencing
// them by student email and course title. Enrollments with an unresolvable
// endpoint are dropped with a diagnostic. The whole run commits as a single
// transaction; if the courses table is already populated, nothing is touched.
func (im *Importer) ImportCatalog(ctx context.Context, students []dataset.StudentRecord, courses []dataset.CourseRecord, enrollments []dataset.EnrollmentRecord) (*Report, error) {
	populated, err := im.populated(ctx, &db.Course{})
	if err != nil {
		return nil, fmt.Errorf("check courses table: %w", err)
	}
	if populated {
		log.Info().Msg("Database already contains data, skipping import")
		return &Report{Skipped: true}, nil
	}

	report := &Report{}
	err = im.store.Transaction(ctx, func(tx *gorm.DB) error {
		studentIDs := make(map[string]int64, len(students))
		for _, rec := range students {
			row := db.Student{
				Name:  rec.Name,
				Email: sql.NullString{String: rec.Email, Valid: true},
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert student %q: %w", rec.Email, err)
			}
			studentIDs[rec.Email] = row.ID
			report.Students++
		}

		courseIDs := make(map[string]int64, len(courses))
		for _, rec := range courses {
			row := db.Course{Title: rec.Title}
			if rec.Description != "" {
				row.Description = sql.NullString{String: rec.Description, Valid: true}
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert course %q: %w", rec.Title, err)
			}
			courseIDs[rec.Title] = row.ID
			report.Courses++
		}

		for _, rec := range enrollments {
			studentID, ok := studentIDs[rec.StudentEmail]
			if !ok {
				diag := fmt.Sprintf("student %q not found, skipping enrollment in %q", rec.StudentEmail, rec.CourseTitle)
				log.Warn().
					Str("student", rec.StudentEmail).
					Str("course", rec.CourseTitle).
					Msg("Missing reference, skipped")
				report.Dropped = append(report.Dropped, diag)
				continue
			}
			courseID, ok := courseIDs[rec.CourseTitle]
			if !ok {
				diag := fmt.Sprintf("course %q not found, skipping enrollment of %q", rec.CourseTitle, rec.StudentEmail)
				log.Warn().
					Str("student", rec.StudentEmail).
					Str("course", rec.CourseTitle).
					Msg("Missing reference, skipped")
				report.Dropped = append(report.Dropped, diag)
				continue
			}
			row := db.Enrollment{
				StudentID:  studentID,
				CourseID:   courseID,
				EnrolledAt: rec.EnrolledAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert enrollment %q/%q: %w", rec.StudentEmail, rec.CourseTitle, err)
			}
			report.Enrollments++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("students", report.Students).
		Int("courses", report.Courses).
		Int("enrollments", report.Enrollments).
		Int("dropped", len(report.Dropped)).
		Msg("Catalog import succeeded")
	return report, nil
}

// populated reports whether the table behind model already has any rows.
func (im *Importer) populated(ctx context.Context, model any) (bool, error) {
	var n int64
	if err := im.store.DB.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
