package database

import (
	"context"
	"database/sql"
	"fmt"
)

// calendarSchema creates the OSWEBDB calendar tables when they are missing.
// The statements are valid for MySQL and SQLite.
var calendarSchema = []string{
	`CREATE TABLE IF NOT EXISTS calsys (
		SystemNo INTEGER NOT NULL PRIMARY KEY,
		Title VARCHAR(80) NOT NULL,
		Properties INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS caluser (
		SystemNo INTEGER NOT NULL,
		UserId INTEGER NOT NULL,
		UserName VARCHAR(16) NOT NULL,
		Name VARCHAR(40) NOT NULL,
		Initials VARCHAR(8) NOT NULL,
		Properties INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (SystemNo, UserId)
	)`,
	`CREATE TABLE IF NOT EXISTS calapp (
		SystemNo INTEGER NOT NULL,
		CalId INTEGER NOT NULL,
		Date DATE NOT NULL,
		FromTime VARCHAR(5) NOT NULL,
		ToTime VARCHAR(5) NOT NULL,
		Properties INTEGER NOT NULL DEFAULT 0,
		Subject VARCHAR(255) NOT NULL,
		Note TEXT,
		PRIMARY KEY (SystemNo, CalId)
	)`,
	`CREATE TABLE IF NOT EXISTS calmerge (
		SystemNo INTEGER NOT NULL,
		CalId INTEGER NOT NULL,
		UserId INTEGER NOT NULL,
		Properties INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (SystemNo, CalId, UserId)
	)`,
}

// EnsureCalendarSchema creates the calendar tables that do not exist yet.
func EnsureCalendarSchema(ctx context.Context, db *sql.DB) error {
	for _, statement := range calendarSchema {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create calendar schema: %w", err)
		}
	}
	return nil
}
