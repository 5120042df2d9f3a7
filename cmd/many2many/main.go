// Command many2many demonstrates the many-to-many student/course mapping via
// the enrollment association object: seed the database from the sample
// catalog when empty, then run read queries.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/gradebook/internal/config"
	"github.com/thebtf/gradebook/internal/dataset"
	"github.com/thebtf/gradebook/internal/db"
	"github.com/thebtf/gradebook/internal/importer"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Get()
	storeCfg, err := db.ConfigFromApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid database configuration")
	}

	store, err := db.NewStore(storeCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer store.Close()

	ctx := context.Background()

	students, courses, enrollments := dataset.SampleCatalog()
	if _, err := importer.New(store).ImportCatalog(ctx, students, courses, enrollments); err != nil {
		log.Fatal().Err(err).Msg("Catalog import failed")
	}

	if err := run(ctx, store); err != nil {
		log.Fatal().Err(err).Msg("Query demo failed")
	}
}

func run(ctx context.Context, store *db.Store) error {
	studentStore := db.NewStudentStore(store)
	courseStore := db.NewCourseStore(store)
	enrollmentStore := db.NewEnrollmentStore(store)

	// 1. Record counts
	studentCount, err := studentStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count students: %w", err)
	}
	courseCount, err := courseStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	enrollmentCount, err := enrollmentStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count enrollments: %w", err)
	}
	fmt.Println("\nDatabase contains:")
	fmt.Printf("- %d students\n", studentCount)
	fmt.Printf("- %d courses\n", courseCount)
	fmt.Printf("- %d enrollments\n", enrollmentCount)

	// 2. Each student and their courses
	fmt.Println("\n=== Students and Their Courses ===")
	students, err := studentStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list students: %w", err)
	}
	courseTitles := make(map[int64]string)
	courses, err := courseStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}
	for _, c := range courses {
		courseTitles[c.ID] = c.Title
	}
	for _, s := range students {
		fmt.Printf("\nStudent: %s (%s)\n", s.Name, s.Email.String)
		fmt.Println("Courses enrolled:")
		links, err := enrollmentStore.ListByStudent(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("list enrollments of student: %w", err)
		}
		for _, link := range links {
			fmt.Printf("    - %s (enrolled on %s)\n",
				courseTitles[link.CourseID], link.EnrolledAt.Format("2006-01-02"))
		}
	}

	// 3. Each course and its students
	fmt.Println("\n=== Courses and Enrolled Students ===")
	for _, c := range courses {
		fmt.Printf("\nCourse: %s\n", c.Title)
		fmt.Println("Students enrolled:")
		enrolled, err := courseStore.Students(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("list students in course: %w", err)
		}
		for _, s := range enrolled {
			fmt.Printf("  - %s (%s)\n", s.Name, s.Email.String)
		}
	}

	return nil
}
