package utils

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// InitializeSQLiteDB opens (or recreates) the SQLite DB and applies the
// schema for keyword matches.
func InitializeSQLiteDB(dbPath string) (*sql.DB, error) {
	if err := DeleteFileIfExists(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, _ = db.Exec("PRAGMA synchronous = OFF;")

	createStmts := []string{
		`CREATE TABLE IF NOT EXISTS Keywords (
			Position INTEGER PRIMARY KEY,
			Keyword TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS Matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			Keyword TEXT NOT NULL,
			Path TEXT NOT NULL
		);`,
	}
	for _, stmt := range createStmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return db, nil
}

// InsertMatches writes the keywords, in order, and every keyword/path pair in
// a single transaction.
func InsertMatches(db *sql.DB, keywords []string, matches map[string][]string) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	keywordStmt, err := tx.Prepare(`INSERT INTO Keywords (Position, Keyword) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare keyword statement: %w", err)
	}
	defer keywordStmt.Close()

	matchStmt, err := tx.Prepare(`INSERT INTO Matches (Keyword, Path) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare match statement: %w", err)
	}
	defer matchStmt.Close()

	for i, keyword := range keywords {
		if _, err = keywordStmt.Exec(i, keyword); err != nil {
			return fmt.Errorf("failed to insert keyword '%s': %w", keyword, err)
		}
		for _, path := range matches[keyword] {
			if _, err = matchStmt.Exec(keyword, path); err != nil {
				return fmt.Errorf("failed to insert match '%s' -> '%s': %w", keyword, path, err)
			}
		}
	}

	return nil
}
