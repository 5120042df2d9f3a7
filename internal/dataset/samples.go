package dataset

import "time"

// SampleRoster returns the built-in teacher/student dataset used by the
// one-to-many demo.
func SampleRoster() ([]TeacherRecord, []StudentRecord) {
	teachers := []TeacherRecord{
		{Name: "Ms. Johnson", Subject: "Mathematics"},
		{Name: "Mr. Smith", Subject: "History"},
		{Name: "Dr. Garcia", Subject: "Science"},
	}

	students := []StudentRecord{
		{Name: "Alice", Grade: 95, TeacherName: "Ms. Johnson"},
		{Name: "Bob", Grade: 87, TeacherName: "Ms. Johnson"},
		{Name: "Charlie", Grade: 91, TeacherName: "Ms. Johnson"},
		{Name: "Diana", Grade: 82, TeacherName: "Mr. Smith"},
		{Name: "Edward", Grade: 88, TeacherName: "Mr. Smith"},
		{Name: "Fatima", Grade: 94, TeacherName: "Dr. Garcia"},
		{Name: "George", Grade: 79, TeacherName: "Dr. Garcia"},
		{Name: "Hannah", Grade: 90, TeacherName: "Dr. Garcia"},
	}

	return teachers, students
}

// SampleCatalog returns the built-in student/course/enrollment dataset used
// by the many-to-many demo.
func SampleCatalog() ([]StudentRecord, []CourseRecord, []EnrollmentRecord) {
	students := []StudentRecord{
		{Name: "Alice Smith", Email: "alice@example.com"},
		{Name: "Bob Johnson", Email: "bob@example.com"},
		{Name: "Charlie Brown", Email: "charlie@example.com"},
		{Name: "Diana Prince", Email: "diana@example.com"},
		{Name: "Edward Stark", Email: "edward@example.com"},
	}

	courses := []CourseRecord{
		{Title: "Python Programming", Description: "Learn Python from basics to advanced concepts."},
		{Title: "Data Science Fundamentals", Description: "Introduction to data analysis and visualization."},
		{Title: "Machine Learning", Description: "Algorithms and techniques for predictive modeling."},
		{Title: "Database Design", Description: "Relational database theory and SQL."},
		{Title: "Web Development", Description: "HTML, CSS, and JavaScript fundamentals."},
	}

	enrollments := []EnrollmentRecord{
		{StudentEmail: "alice@example.com", CourseTitle: "Python Programming", EnrolledAt: date(2025, 1, 15)},
		{StudentEmail: "alice@example.com", CourseTitle: "Data Science Fundamentals", EnrolledAt: date(2025, 1, 15)},
		{StudentEmail: "bob@example.com", CourseTitle: "Python Programming", EnrolledAt: date(2025, 1, 20)},
		{StudentEmail: "bob@example.com", CourseTitle: "Data Science Fundamentals", EnrolledAt: date(2025, 1, 20)},
		{StudentEmail: "bob@example.com", CourseTitle: "Machine Learning", EnrolledAt: date(2025, 2, 1)},
		{StudentEmail: "charlie@example.com", CourseTitle: "Machine Learning", EnrolledAt: date(2025, 1, 25)},
		{StudentEmail: "charlie@example.com", CourseTitle: "Database Design", EnrolledAt: date(2025, 2, 10)},
		{StudentEmail: "diana@example.com", CourseTitle: "Database Design", EnrolledAt: date(2025, 2, 5)},
		{StudentEmail: "diana@example.com", CourseTitle: "Web Development", EnrolledAt: date(2025, 2, 5)},
		{StudentEmail: "edward@example.com", CourseTitle: "Web Development", EnrolledAt: date(2025, 2, 15)},
	}

	return students, courses, enrollments
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
