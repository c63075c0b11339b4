package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var flagMigrations = []string{
	`CREATE TABLE IF NOT EXISTS user_flags (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		value INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		UNIQUE (user_id, name),
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_user_flags_user_id ON user_flags(user_id);`,
}

var repeatableFlagMigrations = []string{}

// Flag is a named session flag attached to a user. Menu items
// reference flags by name through their session key.
type Flag struct {
	ID int64

	UserID int64

	Name  string
	Value int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) SetUserFlag(ctx context.Context, userID int64, name string, value int) error {
	return errors.WithStack(s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := `
			INSERT INTO user_flags (user_id, name, value, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (user_id, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`

		now := time.Now().UTC().Unix()

		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{userID, name, value, now, now},
		})

		return errors.WithStack(err)
	}))
}

func (s *Store) DeleteUserFlag(ctx context.Context, userID int64, name string) error {
	return errors.WithStack(s.Tx(ctx, func(conn *sqlite.Conn) error {
		err := sqlitex.Execute(conn, `DELETE FROM user_flags WHERE user_id = ? AND name = ?`, &sqlitex.ExecOptions{
			Args: []any{userID, name},
		})

		return errors.WithStack(err)
	}))
}

func (s *Store) CountFlags(ctx context.Context) (int64, error) {
	var count int64

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, "SELECT COUNT(*) FROM user_flags", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt64(0)
				return nil
			},
		}))
	})

	return count, errors.WithStack(err)
}

func (s *Store) joinUserFlags(ctx context.Context, conn *sqlite.Conn, user *User) error {
	query := `
		SELECT id, user_id, name, value, created_at, updated_at
		FROM user_flags
		WHERE user_id = ?
		ORDER BY name
	`

	user.flags = make([]*Flag, 0)

	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{user.ID},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			flag := &Flag{
				ID:        stmt.ColumnInt64(0),
				UserID:    stmt.ColumnInt64(1),
				Name:      stmt.ColumnText(2),
				Value:     int(stmt.ColumnInt64(3)),
				CreatedAt: time.Unix(stmt.ColumnInt64(4), 0),
				UpdatedAt: time.Unix(stmt.ColumnInt64(5), 0),
			}

			user.flags = append(user.flags, flag)

			return nil
		},
	})

	return errors.WithStack(err)
}
