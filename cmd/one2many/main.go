// Command one2many demonstrates the one-to-many teacher/student mapping:
// seed the database from the sample roster when empty, then run read queries.
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

	teachers, students := dataset.SampleRoster()
	if _, err := importer.New(store).ImportRoster(ctx, teachers, students); err != nil {
		log.Fatal().Err(err).Msg("Roster import failed")
	}

	if err := run(ctx, store); err != nil {
		log.Fatal().Err(err).Msg("Query demo failed")
	}
}

func run(ctx context.Context, store *db.Store) error {
	teacherStore := db.NewTeacherStore(store)
	studentStore := db.NewStudentStore(store)

	// 1. All teachers
	fmt.Println("\n=== All Teachers ===")
	teachers, err := teacherStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list teachers: %w", err)
	}
	for _, t := range teachers {
		fmt.Println(t)
	}

	// 2. A specific teacher and her students
	fmt.Println("\n=== Ms. Johnson and her students ===")
	johnson, err := teacherStore.GetByName(ctx, "Ms. Johnson")
	if err != nil {
		return fmt.Errorf("get teacher: %w", err)
	}
	if johnson == nil {
		return fmt.Errorf("teacher %q not found", "Ms. Johnson")
	}
	fmt.Printf("Teacher: %s, Subject: %s\n", johnson.Name, johnson.Subject)

	// 3. Students through the relationship, by explicit query
	fmt.Println("Students:")
	students, err := teacherStore.Students(ctx, johnson.ID)
	if err != nil {
		return fmt.Errorf("list students of teacher: %w", err)
	}
	for _, s := range students {
		fmt.Printf("    - %s: Grade %d\n", s.Name, s.Grade.Int64)
	}

	// 4. Start from a student and find the teacher
	fmt.Println("\n=== Alice and her teacher ===")
	alice, err := studentStore.GetByName(ctx, "Alice")
	if err != nil {
		return fmt.Errorf("get student: %w", err)
	}
	if alice == nil {
		return fmt.Errorf("student %q not found", "Alice")
	}
	fmt.Printf("Student: %s, Grade: %d\n", alice.Name, alice.Grade.Int64)

	teacher, err := studentStore.TeacherOf(ctx, alice.ID)
	if err != nil {
		return fmt.Errorf("get teacher of student: %w", err)
	}
	if teacher != nil {
		fmt.Printf("Teacher: %s, Subject: %s\n", teacher.Name, teacher.Subject)
	}

	return nil
}
