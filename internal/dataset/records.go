package dataset

import "time"

// TeacherRecord is an entity row for the roster schema. Name is the natural
// key students reference.
type TeacherRecord struct {
	Name    string
	Subject string
}

// StudentRecord is a student row. Roster input fills Grade and TeacherName;
// catalog input fills Email, which enrollments reference.
type StudentRecord struct {
	Name        string
	Email       string
	Grade       int64
	TeacherName string
}

// CourseRecord is an entity row for the catalog schema. Title is the natural
// key enrollments reference.
type CourseRecord struct {
	Title       string
	Description string
}

// EnrollmentRecord is a reference row linking a student to a course by their
// natural keys, carrying the enrollment date as a link attribute.
type EnrollmentRecord struct {
	StudentEmail string
	CourseTitle  string
	EnrolledAt   time.Time
}

// TeachersFromRows converts raw rows into teacher records. Expected fields:
// name, subject.
func TeachersFromRows(rows []Row) ([]TeacherRecord, error) {
	records := make([]TeacherRecord, 0, len(rows))
	for i, row := range rows {
		name, err := field(row, "name", i+1)
		if err != nil {
			return nil, err
		}
		subject, err := field(row, "subject", i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, TeacherRecord{Name: name, Subject: subject})
	}
	return records, nil
}

// RosterStudentsFromRows converts raw rows into roster student records.
// Expected fields: name, grade, teacher_name.
func RosterStudentsFromRows(rows []Row) ([]StudentRecord, error) {
	records := make([]StudentRecord, 0, len(rows))
	for i, row := range rows {
		name, err := field(row, "name", i+1)
		if err != nil {
			return nil, err
		}
		grade, err := intField(row, "grade", i+1)
		if err != nil {
			return nil, err
		}
		teacherName, err := field(row, "teacher_name", i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, StudentRecord{Name: name, Grade: grade, TeacherName: teacherName})
	}
	return records, nil
}

// CatalogStudentsFromRows converts raw rows into catalog student records.
// Expected fields: name, email.
func CatalogStudentsFromRows(rows []Row) ([]StudentRecord, error) {
	records := make([]StudentRecord, 0, len(rows))
	for i, row := range rows {
		name, err := field(row, "name", i+1)
		if err != nil {
			return nil, err
		}
		email, err := field(row, "email", i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, StudentRecord{Name: name, Email: email})
	}
	return records, nil
}

// CoursesFromRows converts raw rows into course records. Expected fields:
// title, description (description may be empty).
func CoursesFromRows(rows []Row) ([]CourseRecord, error) {
	records := make([]CourseRecord, 0, len(rows))
	for i, row := range rows {
		title, err := field(row, "title", i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, CourseRecord{Title: title, Description: row["description"]})
	}
	return records, nil
}

// EnrollmentsFromRows converts raw rows into enrollment records. Expected
// fields: student_email, course_title, enrollment_date (YYYY-MM-DD). A
// malformed date fails the whole load.
func EnrollmentsFromRows(rows []Row) ([]EnrollmentRecord, error) {
	records := make([]EnrollmentRecord, 0, len(rows))
	for i, row := range rows {
		email, err := field(row, "student_email", i+1)
		if err != nil {
			return nil, err
		}
		title, err := field(row, "course_title", i+1)
		if err != nil {
			return nil, err
		}
		enrolledAt, err := dateField(row, "enrollment_date", i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, EnrollmentRecord{
			StudentEmail: email,
			CourseTitle:  title,
			EnrolledAt:   enrolledAt,
		})
	}
	return records, nil
}
