// Command gradebook-import bulk-loads CSV files into the database. Roster
// mode expects teacher and student files; catalog mode expects student,
// course, and enrollment files.
//
// Usage:
//
//	gradebook-import -mode roster -teachers teachers.csv -students students.csv
//	gradebook-import -mode catalog -students students.csv -courses courses.csv -enrollments enrollments.csv
package main

import (
	"context"
	"flag"
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

	var (
		mode            = flag.String("mode", "roster", "import mode: roster or catalog")
		settingsPath    = flag.String("settings", "", "path to YAML settings file")
		teachersPath    = flag.String("teachers", "", "teachers CSV (roster mode)")
		studentsPath    = flag.String("students", "", "students CSV")
		coursesPath     = flag.String("courses", "", "courses CSV (catalog mode)")
		enrollmentsPath = flag.String("enrollments", "", "enrollments CSV (catalog mode)")
	)
	flag.Parse()

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
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
	im := importer.New(store)

	var report *importer.Report
	switch *mode {
	case "roster":
		report, err = runRoster(ctx, im, *teachersPath, *studentsPath)
	case "catalog":
		report, err = runCatalog(ctx, im, *studentsPath, *coursesPath, *enrollmentsPath)
	default:
		log.Fatal().Str("mode", *mode).Msg("Unknown import mode")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}

	if report.Skipped {
		fmt.Println("Database already contains data, nothing imported.")
		return
	}
	fmt.Printf("Imported %d teachers, %d students, %d courses, %d enrollments (%d dropped).\n",
		report.Teachers, report.Students, report.Courses, report.Enrollments, len(report.Dropped))
	for _, diag := range report.Dropped {
		fmt.Println("  skipped:", diag)
	}
}

func runRoster(ctx context.Context, im *importer.Importer, teachersPath, studentsPath string) (*importer.Report, error) {
	if teachersPath == "" || studentsPath == "" {
		return nil, fmt.Errorf("roster mode requires -teachers and -students")
	}

	teacherRows, err := dataset.ReadCSVFile(teachersPath)
	if err != nil {
		return nil, err
	}
	teachers, err := dataset.TeachersFromRows(teacherRows)
	if err != nil {
		return nil, fmt.Errorf("load teachers: %w", err)
	}

	studentRows, err := dataset.ReadCSVFile(studentsPath)
	if err != nil {
		return nil, err
	}
	students, err := dataset.RosterStudentsFromRows(studentRows)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	return im.ImportRoster(ctx, teachers, students)
}

func runCatalog(ctx context.Context, im *importer.Importer, studentsPath, coursesPath, enrollmentsPath string) (*importer.Report, error) {
	if studentsPath == "" || coursesPath == "" || enrollmentsPath == "" {
		return nil, fmt.Errorf("catalog mode requires -students, -courses, and -enrollments")
	}

	studentRows, err := dataset.ReadCSVFile(studentsPath)
	if err != nil {
		return nil, err
	}
	students, err := dataset.CatalogStudentsFromRows(studentRows)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	courseRows, err := dataset.ReadCSVFile(coursesPath)
	if err != nil {
		return nil, err
	}
	courses, err := dataset.CoursesFromRows(courseRows)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	enrollmentRows, err := dataset.ReadCSVFile(enrollmentsPath)
	if err != nil {
		return nil, err
	}
	enrollments, err := dataset.EnrollmentsFromRows(enrollmentRows)
	if err != nil {
		return nil, fmt.Errorf("load enrollments: %w", err)
	}

	return im.ImportCatalog(ctx, students, courses, enrollments)
}
