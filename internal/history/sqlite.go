package history

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (and if needed initializes) the history
// database at dbPath.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func initSchema(db *sql.DB) error {
	createTables := `
	CREATE TABLE IF NOT EXISTS opens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		opened_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_opens_opened_at ON opens(opened_at);
	`
	_, err := db.Exec(createTables)
	return err
}

// Record stores one folder open with the current timestamp.
func (r *SQLiteRepository) Record(path string) error {
	_, err := r.db.Exec(
		`INSERT INTO opens(path, opened_at) VALUES (?, ?)`,
		path, time.Now().Unix(),
	)
	return err
}

// Recent returns up to limit opens, newest first.
func (r *SQLiteRepository) Recent(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, path, opened_at
		FROM opens
		ORDER BY opened_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &e.Path, &ts); err != nil {
			return nil, err
		}
		e.OpenedAt = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
