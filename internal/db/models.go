// Package db provides GORM-based database operations for gradebook.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Teacher is the "one" side of the teacher/student relationship.
// Name is the natural key used by the roster importer.
type Teacher struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Subject string `gorm:"type:varchar(100);not null"`
}

func (Teacher) TableName() string { return "teachers" }

// String implements fmt.Stringer for demo output.
func (t Teacher) String() string {
	return fmt.Sprintf("Teacher(id=%d, name=%s, subject=%s)", t.ID, t.Name, t.Subject)
}

// Student belongs to at most one teacher (roster schema) and to any number of
// courses through Enrollment (catalog schema). Email is the natural key used
// by the catalog importer; roster rows leave it NULL.
type Student struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Name      string         `gorm:"type:varchar(100);index;not null"`
	Email     sql.NullString `gorm:"type:varchar(255);uniqueIndex"`
	Grade     sql.NullInt64
	TeacherID sql.NullInt64 `gorm:"index:idx_students_teacher"`
}

func (Student) TableName() string { return "students" }

// String implements fmt.Stringer for demo output.
func (s Student) String() string {
	if s.Email.Valid {
		return fmt.Sprintf("Student(id=%d, name=%s, email=%s)", s.ID, s.Name, s.Email.String)
	}
	return fmt.Sprintf("Student(id=%d, name=%s, grade=%d)", s.ID, s.Name, s.Grade.Int64)
}

// Course is one side of the student/course many-to-many relationship.
// Title is the natural key used by the catalog importer.
type Course struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Title       string         `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description sql.NullString `gorm:"type:text"`
}

func (Course) TableName() string { return "courses" }

// String implements fmt.Stringer for demo output.
func (c Course) String() string {
	return fmt.Sprintf("Course(id=%d, title=%s)", c.ID, c.Title)
}

// Enrollment is the association object linking students to courses. It holds
// surrogate-id foreign keys plus the enrollment timestamp as a link attribute.
type Enrollment struct {
	StudentID  int64     `gorm:"primaryKey;autoIncrement:false"`
	CourseID   int64     `gorm:"primaryKey;autoIncrement:false"`
	EnrolledAt time.Time `gorm:"not null"`
}

func (Enrollment) TableName() string { return "enrollments" }

// BeforeCreate hook to ensure the enrollment timestamp is set.
func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = time.Now()
	}
	return nil
}

// String implements fmt.Stringer for demo output.
func (e Enrollment) String() string {
	return fmt.Sprintf("Enrollment(student_id=%d, course_id=%d)", e.StudentID, e.CourseID)
}
