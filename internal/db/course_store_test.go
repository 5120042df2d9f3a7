package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseStore_CreateAndGetByTitle(t *testing.T) {
	store := testStore(t)
	courses := NewCourseStore(store)
	ctx := context.Background()

	course := &Course{
		Title:       "Python Programming",
		Description: sql.NullString{String: "Learn Python from basics to advanced concepts.", Valid: true},
	}
	require.NoError(t, courses.Create(ctx, course))
	assert.Greater(t, course.ID, int64(0))

	got, err := courses.GetByTitle(ctx, "Python Programming")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, course.ID, got.ID)
	assert.True(t, got.Description.Valid)

	missing, err := courses.GetByTitle(ctx, "Underwater Basket Weaving")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCourseStore_Students(t *testing.T) {
	store := testStore(t)
	students := NewStudentStore(store)
	courses := NewCourseStore(store)
	enrollments := NewEnrollmentStore(store)
	ctx := context.Background()

	python := &Course{Title: "Python Programming"}
	require.NoError(t, courses.Create(ctx, python))

	alice := &Student{Name: "Alice Smith", Email: sql.NullString{String: "alice@example.com", Valid: true}}
	bob := &Student{Name: "Bob Johnson", Email: sql.NullString{String: "bob@example.com", Valid: true}}
	require.NoError(t, students.Create(ctx, alice))
	require.NoError(t, students.Create(ctx, bob))

	now := time.Now()
	require.NoError(t, enrollments.Create(ctx, &Enrollment{StudentID: alice.ID, CourseID: python.ID, EnrolledAt: now}))
	require.NoError(t, enrollments.Create(ctx, &Enrollment{StudentID: bob.ID, CourseID: python.ID, EnrolledAt: now}))

	enrolled, err := courses.Students(ctx, python.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 2)
	assert.Equal(t, "Alice Smith", enrolled[0].Name)
	assert.Equal(t, "Bob Johnson", enrolled[1].Name)
}

func TestEnrollmentStore_ListAndCount(t *testing.T) {
	store := testStore(t)
	students := NewStudentStore(store)
	courses := NewCourseStore(store)
	enrollments := NewEnrollmentStore(store)
	ctx := context.Background()

	alice := &Student{Name: "Alice Smith", Email: sql.NullString{String: "alice@example.com", Valid: true}}
	require.NoError(t, students.Create(ctx, alice))

	python := &Course{Title: "Python Programming"}
	ds := &Course{Title: "Data Science Fundamentals"}
	require.NoError(t, courses.Create(ctx, python))
	require.NoError(t, courses.Create(ctx, ds))

	enrolledAt := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, enrollments.Create(ctx, &Enrollment{StudentID: alice.ID, CourseID: python.ID, EnrolledAt: enrolledAt}))
	require.NoError(t, enrollments.Create(ctx, &Enrollment{StudentID: alice.ID, CourseID: ds.ID, EnrolledAt: enrolledAt}))

	n, err := enrollments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	byStudent, err := enrollments.ListByStudent(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 2)
	assert.Equal(t, python.ID, byStudent[0].CourseID)
	assert.Equal(t, enrolledAt.Unix(), byStudent[0].EnrolledAt.Unix())

	byCourse, err := enrollments.ListByCourse(ctx, python.ID)
	require.NoError(t, err)
	require.Len(t, byCourse, 1)
	assert.Equal(t, alice.ID, byCourse[0].StudentID)
}

func TestEnrollment_BeforeCreateSetsTimestamp(t *testing.T) {
	store := testStore(t)
	students := NewStudentStore(store)
	courses := NewCourseStore(store)
	enrollments := NewEnrollmentStore(store)
	ctx := context.Background()

	alice := &Student{Name: "Alice Smith", Email: sql.NullString{String: "alice@example.com", Valid: true}}
	require.NoError(t, students.Create(ctx, alice))
	python := &Course{Title: "Python Programming"}
	require.NoError(t, courses.Create(ctx, python))

	link := &Enrollment{StudentID: alice.ID, CourseID: python.ID}
	require.NoError(t, enrollments.Create(ctx, link))
	assert.False(t, link.EnrolledAt.IsZero())
}
