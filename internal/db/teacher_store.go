// Package db provides GORM-based database operations for gradebook.
package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// TeacherStore provides teacher-related database operations.
type TeacherStore struct {
	db *gorm.DB
}

// NewTeacherStore creates a new teacher store.
func NewTeacherStore(store *Store) *TeacherStore {
	return &TeacherStore{db: store.GetDB()}
}

// Create inserts a teacher and populates its surrogate id.
func (s *TeacherStore) Create(ctx context.Context, teacher *Teacher) error {
	return s.db.WithContext(ctx).Create(teacher).Error
}

// GetByName retrieves a teacher by its natural key. Returns (nil, nil) when
// no such teacher exists.
func (s *TeacherStore) GetByName(ctx context.Context, name string) (*Teacher, error) {
	var t Teacher
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all teachers in insertion order.
func (s *TeacherStore) List(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher
	err := s.db.WithContext(ctx).Order("id").Find(&teachers).Error
	return teachers, err
}

// Count returns the number of teacher rows.
func (s *TeacherStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Teacher{}).Count(&n).Error
	return n, err
}

// Students returns the students assigned to the given teacher, by explicit
// query on the surrogate id.
func (s *TeacherStore) Students(ctx context.Context, teacherID int64) ([]Student, error) {
	var students []Student
	err := s.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("id").
		Find(&students).Error
	return students, err
}
