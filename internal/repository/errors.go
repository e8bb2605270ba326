package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound marks a lookup or update that matched zero rows.
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks a write rejected by a foreign-key or uniqueness
	// constraint.
	ErrConflict = errors.New("constraint violation")
)

// translate maps driver errors onto the repository sentinels. Gorm's error
// translation covers Postgres; the SQLite driver still surfaces raw
// constraint messages, hence the string checks.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case strings.Contains(err.Error(), "FOREIGN KEY constraint failed"),
		strings.Contains(err.Error(), "UNIQUE constraint failed"),
		strings.Contains(err.Error(), "constraint failed"):
		return ErrConflict
	default:
		return err
	}
}
