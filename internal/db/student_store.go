// Package db provides GORM-based database operations for gradebook.
package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// StudentStore provides student-related database operations.
type StudentStore struct {
	db *gorm.DB
}

// NewStudentStore creates a new student store.
func NewStudentStore(store *Store) *StudentStore {
	return &StudentStore{db: store.GetDB()}
}

// Create inserts a student and populates its surrogate id.
func (s *StudentStore) Create(ctx context.Context, student *Student) error {
	return s.db.WithContext(ctx).Create(student).Error
}

// GetByName retrieves a student by name. Returns (nil, nil) when no such
// student exists.
func (s *StudentStore) GetByName(ctx context.Context, name string) (*Student, error) {
	var st Student
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetByEmail retrieves a student by its catalog natural key. Returns
// (nil, nil) when no such student exists.
func (s *StudentStore) GetByEmail(ctx context.Context, email string) (*Student, error) {
	var st Student
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// List returns all students in insertion order.
func (s *StudentStore) List(ctx context.Context) ([]Student, error) {
	var students []Student
	err := s.db.WithContext(ctx).Order("id").Find(&students).Error
	return students, err
}

// Count returns the number of student rows.
func (s *StudentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Student{}).Count(&n).Error
	return n, err
}

// TeacherOf returns the teacher assigned to the given student, or (nil, nil)
// when the student has no teacher.
func (s *StudentStore) TeacherOf(ctx context.Context, studentID int64) (*Teacher, error) {
	var st Student
	err := s.db.WithContext(ctx).First(&st, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !st.TeacherID.Valid {
		return nil, nil
	}

	var t Teacher
	if err := s.db.WithContext(ctx).First(&t, st.TeacherID.Int64).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Courses returns the courses the given student is enrolled in, joined
// through the enrollments association table.
func (s *StudentStore) Courses(ctx context.Context, studentID int64) ([]Course, error) {
	var courses []Course
	err := s.db.WithContext(ctx).
		Model(&Course{}).
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.student_id = ?", studentID).
		Order("courses.id").
		Find(&courses).Error
	return courses, err
}
