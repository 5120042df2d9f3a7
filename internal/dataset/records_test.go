package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeachersFromRows(t *testing.T) {
	rows := []Row{
		{"name": "Ms. Johnson", "subject": "Mathematics"},
		{"name": "Mr. Smith", "subject": "History"},
	}

	records, err := TeachersFromRows(rows)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, TeacherRecord{Name: "Ms. Johnson", Subject: "Mathematics"}, records[0])
}

func TestTeachersFromRows_MissingField(t *testing.T) {
	_, err := TeachersFromRows([]Row{{"name": "Ms. Johnson"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing field "subject"`)
	assert.Contains(t, err.Error(), "row 1")
}

func TestRosterStudentsFromRows(t *testing.T) {
	rows := []Row{
		{"name": "Alice", "grade": "95", "teacher_name": "Ms. Johnson"},
	}

	records, err := RosterStudentsFromRows(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(95), records[0].Grade)
	assert.Equal(t, "Ms. Johnson", records[0].TeacherName)
}

func TestRosterStudentsFromRows_BadGrade(t *testing.T) {
	_, err := RosterStudentsFromRows([]Row{
		{"name": "Alice", "grade": "ninety-five", "teacher_name": "Ms. Johnson"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse int")
}

func TestCoursesFromRows_DescriptionOptional(t *testing.T) {
	records, err := CoursesFromRows([]Row{{"title": "Python Programming"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Description)
}

func TestEnrollmentsFromRows(t *testing.T) {
	rows := []Row{
		{"student_email": "alice@example.com", "course_title": "Python Programming", "enrollment_date": "2025-01-15"},
	}

	records, err := EnrollmentsFromRows(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), records[0].EnrolledAt)
}

func TestEnrollmentsFromRows_MalformedDateIsFatal(t *testing.T) {
	rows := []Row{
		{"student_email": "alice@example.com", "course_title": "Python Programming", "enrollment_date": "2025-01-15"},
		{"student_email": "bob@example.com", "course_title": "Machine Learning", "enrollment_date": "January 20th"},
	}

	_, err := EnrollmentsFromRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse date")
	assert.Contains(t, err.Error(), "row 2")
}

func TestSampleDatasets(t *testing.T) {
	teachers, students := SampleRoster()
	assert.Len(t, teachers, 3)
	assert.Len(t, students, 8)

	catalogStudents, courses, enrollments := SampleCatalog()
	assert.Len(t, catalogStudents, 5)
	assert.Len(t, courses, 5)
	assert.Len(t, enrollments, 10)

	// Every sample reference must resolve against its entity set.
	teacherNames := map[string]bool{}
	for _, tr := range teachers {
		teacherNames[tr.Name] = true
	}
	for _, s := range students {
		assert.True(t, teacherNames[s.TeacherName], "student %s references unknown teacher %s", s.Name, s.TeacherName)
	}

	emails := map[string]bool{}
	for _, s := range catalogStudents {
		emails[s.Email] = true
	}
	titles := map[string]bool{}
	for _, c := range courses {
		titles[c.Title] = true
	}
	for _, e := range enrollments {
		assert.True(t, emails[e.StudentEmail], "enrollment references unknown student %s", e.StudentEmail)
		assert.True(t, titles[e.CourseTitle], "enrollment references unknown course %s", e.CourseTitle)
	}
}
