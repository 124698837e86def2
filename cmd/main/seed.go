package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

const booksSchema = `CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	year INTEGER NOT NULL
)`

var seedBooks = []struct {
	Title  string
	Author string
	Year   int
}{
	{"Blindsight", "Peter Watts", 2006},
	{"Anathem", "Neal Stephenson", 2008},
	{"The Windup Girl", "Paolo Bacigalupi", 2009},
	{"Leviathan Wakes", "James S. A. Corey", 2011},
	{"Embassytown", "China Mieville", 2011},
	{"2312", "Kim Stanley Robinson", 2012},
	{"Ancillary Justice", "Ann Leckie", 2013},
	{"Annihilation", "Jeff VanderMeer", 2014},
	{"The Fifth Season", "N. K. Jemisin", 2015},
	{"Too Like the Lightning", "Ada Palmer", 2016},
	{"A Memory Called Empire", "Arkady Martine", 2019},
	{"Piranesi", "Susanna Clarke", 2020},
}

// seedDatabase creates the demo catalog table and fills it with sample rows.
// An already-populated database is left alone, so the serve command can call
// this on every startup.
func seedDatabase(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if _, err := db.ExecContext(ctx, booksSchema); err != nil {
		return fmt.Errorf("failed to create books table: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}
	if count > 0 {
		logger.Debug("Database already seeded", "rows", count)
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	for _, b := range seedBooks {
		if _, err = tx.ExecContext(ctx, "INSERT INTO books (title, author, year) VALUES (?, ?, ?)", b.Title, b.Author, b.Year); err != nil {
			return fmt.Errorf("failed to insert %q: %w", b.Title, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	logger.Info("Seeded demo catalog", "rows", len(seedBooks))
	return nil
}
