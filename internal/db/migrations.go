// Package db provides GORM-based database operations for gradebook.
package db

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// runMigrations runs all database migrations using gormigrate. Every step is
// create-if-absent, so opening an already populated database is a no-op.
func runMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		// Migration 001: roster tables (Teacher, Student)
		{
			ID: "001_roster_tables",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&Teacher{}); err != nil {
					return err
				}
				return tx.AutoMigrate(&Student{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("students", "teachers")
			},
		},

		// Migration 002: course catalog
		{
			ID: "002_courses",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&Course{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("courses")
			},
		},

		// Migration 003: enrollment association table
		{
			ID: "003_enrollments",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&Enrollment{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("enrollments")
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("run gormigrate migrations: %w", err)
	}

	return nil
}
