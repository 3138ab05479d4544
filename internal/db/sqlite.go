package db

import (
	"database/sql"
	"fmt"

	"github.com/Chinex4/unipaddy-app/internal/config"
	"github.com/Chinex4/unipaddy-app/pkg/errors"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS semesters (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	year INTEGER NOT NULL,
	term INTEGER NOT NULL,
	total_units INTEGER NOT NULL,
	total_points INTEGER NOT NULL,
	gpa REAL NOT NULL,
	UNIQUE(year, term)
);

CREATE TABLE IF NOT EXISTS semester_courses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	semester_id INTEGER NOT NULL,
	code TEXT NOT NULL,
	units INTEGER NOT NULL,
	grade TEXT NOT NULL,
	points INTEGER NOT NULL,
	FOREIGN KEY(semester_id) REFERENCES semesters(id) ON DELETE CASCADE
);
`

// NewConnection opens the embedded ledger database and ensures the schema
// exists. Any failure here means the ledger is unusable for the whole run.
func NewConnection(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}

	// database/sql pooling would hand out connections without the
	// foreign_keys pragma applied; one connection is plenty for a
	// single-editor local store.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}

	return db, nil
}
