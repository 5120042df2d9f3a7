// Package db provides GORM-based database operations for gradebook.
package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// CourseStore provides course-related database operations.
type CourseStore struct {
	db *gorm.DB
}

// NewCourseStore creates a new course store.
func NewCourseStore(store *Store) *CourseStore {
	return &CourseStore{db: store.GetDB()}
}

// Create inserts a course and populates its surrogate id.
func (s *CourseStore) Create(ctx context.Context, course *Course) error {
	return s.db.WithContext(ctx).Create(course).Error
}

// GetByTitle retrieves a course by its natural key. Returns (nil, nil) when
// no such course exists.
func (s *CourseStore) GetByTitle(ctx context.Context, title string) (*Course, error) {
	var c Course
	err := s.db.WithContext(ctx).Where("title = ?", title).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all courses in insertion order.
func (s *CourseStore) List(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := s.db.WithContext(ctx).Order("id").Find(&courses).Error
	return courses, err
}

// Count returns the number of course rows.
func (s *CourseStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Course{}).Count(&n).Error
	return n, err
}

// Students returns the students enrolled in the given course, joined through
// the enrollments association table.
func (s *CourseStore) Students(ctx context.Context, courseID int64) ([]Student, error) {
	var students []Student
	err := s.db.WithContext(ctx).
		Model(&Student{}).
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ?", courseID).
		Order("students.id").
		Find(&students).Error
	return students, err
}
