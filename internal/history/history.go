package history

import "time"

// Entry is one recorded folder open.
type Entry struct {
	ID       int
	Path     string
	OpenedAt time.Time
}

// Repository defines operations for the open history
type Repository interface {
	Record(path string) error
	Recent(limit int) ([]Entry, error)
	Close() error
}
