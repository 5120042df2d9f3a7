// Package db provides GORM-based database operations for gradebook.
package db

import (
	"context"

	"gorm.io/gorm"
)

// EnrollmentStore provides enrollment-related database operations.
type EnrollmentStore struct {
	db *gorm.DB
}

// NewEnrollmentStore creates a new enrollment store.
func NewEnrollmentStore(store *Store) *EnrollmentStore {
	return &EnrollmentStore{db: store.GetDB()}
}

// Create inserts an enrollment link row.
func (s *EnrollmentStore) Create(ctx context.Context, enrollment *Enrollment) error {
	return s.db.WithContext(ctx).Create(enrollment).Error
}

// Count returns the number of enrollment rows.
func (s *EnrollmentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Enrollment{}).Count(&n).Error
	return n, err
}

// ListByStudent returns the enrollments of the given student, oldest first.
func (s *EnrollmentStore) ListByStudent(ctx context.Context, studentID int64) ([]Enrollment, error) {
	var links []Enrollment
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("course_id").
		Find(&links).Error
	return links, err
}

// ListByCourse returns the enrollments in the given course.
func (s *EnrollmentStore) ListByCourse(ctx context.Context, courseID int64) ([]Enrollment, error) {
	var links []Enrollment
	err := s.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("student_id").
		Find(&links).Error
	return links, err
}
