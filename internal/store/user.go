package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var userMigrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,

		subject TEXT,
		provider TEXT,

		nickname TEXT,
		email TEXT,

		read_access BOOLEAN NOT NULL DEFAULT 0,
		write_access BOOLEAN NOT NULL DEFAULT 0,
		is_admin BOOLEAN NOT NULL DEFAULT 0,

		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		connected_at INTEGER,

		basic_username TEXT,
		basic_password BLOB,

		UNIQUE (subject, provider),
		UNIQUE (basic_username)
	);`,
}

type User struct {
	ID int64

	Provider string
	Subject  string

	Nickname string
	Email    string

	ReadAccess  bool
	WriteAccess bool
	IsAdmin     bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConnectedAt time.Time

	BasicUsername string
	BasicPassword []byte

	flags []*Flag
}

// Flags returns the named session flags attached to the user.
func (u *User) Flags() []*Flag {
	return u.flags
}

// Provider implements authn.User.
func (u *User) UserProvider() string {
	return u.Provider
}

// Subject implements authn.User.
func (u *User) UserSubject() string {
	return u.Subject
}

func (s *Store) FindOrCreateUser(ctx context.Context, subject, provider string) (*User, error) {
	var user *User
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM users WHERE subject = ? AND provider = ? LIMIT 1`, userAttributes)
		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				return errors.WithStack(s.bindUser(stmt, user))
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if user != nil {
			if err := s.joinUserFlags(ctx, conn, user); err != nil {
				return errors.WithStack(err)
			}

			return nil
		}

		query = fmt.Sprintf(`
			INSERT INTO users
				(subject, provider, read_access, created_at, updated_at)
			VALUES (?, ?, 1, ?, ?) RETURNING %s;`,
			userAttributes,
		)

		now := time.Now().UTC().Unix()

		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider, now, now},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				return errors.WithStack(s.bindUser(stmt, user))
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if err := s.joinUserFlags(ctx, conn, user); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// UpdateUserProfile syncs the mutable profile attributes and access
// grants of an existing user row.
func (s *Store) UpdateUserProfile(ctx context.Context, user *User) error {
	return errors.WithStack(s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := `
			UPDATE users SET
				nickname = ?,
				email = ?,
				read_access = ?,
				write_access = ?,
				is_admin = ?,
				updated_at = ?
			WHERE id = ?
		`

		now := time.Now().UTC().Unix()

		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{user.Nickname, user.Email, user.ReadAccess, user.WriteAccess, user.IsAdmin, now, user.ID},
		})

		return errors.WithStack(err)
	}))
}

func (s *Store) TouchUser(ctx context.Context, userID int64) error {
	return errors.WithStack(s.Do(ctx, func(conn *sqlite.Conn) error {
		err := sqlitex.Execute(conn, `UPDATE users SET connected_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{time.Now().UTC().Unix(), userID},
		})

		return errors.WithStack(err)
	}))
}

func (s *Store) GetUsers(ctx context.Context, userIDs ...int64) ([]*User, error) {
	var users []*User

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		var query string
		var args []any

		if len(userIDs) > 0 {
			placeholders := make([]string, len(userIDs))
			args = make([]any, len(userIDs))

			for i, id := range userIDs {
				placeholders[i] = "?"
				args[i] = id
			}

			query = fmt.Sprintf("SELECT %s FROM users WHERE id IN (%s) ORDER BY id",
				userAttributes, strings.Join(placeholders, ", "))
		} else {
			query = fmt.Sprintf("SELECT %s FROM users ORDER BY id", userAttributes)
		}

		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: args,
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user := &User{}
				if err := s.bindUser(stmt, user); err != nil {
					return errors.WithStack(err)
				}

				users = append(users, user)
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		for _, user := range users {
			if err := s.joinUserFlags(ctx, conn, user); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	})

	return users, errors.WithStack(err)
}

func (s *Store) DeleteUsers(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		placeholders := make([]string, len(userIDs))
		args := make([]any, len(userIDs))

		for i, id := range userIDs {
			placeholders[i] = "?"
			args[i] = id
		}

		query := fmt.Sprintf("DELETE FROM users WHERE id IN (%s)", strings.Join(placeholders, ", "))

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: args,
		}))
	})
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, "SELECT COUNT(*) FROM users", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt64(0)
				return nil
			},
		}))
	})

	return count, errors.WithStack(err)
}

var userAttributes = `id, subject, provider, nickname, email, read_access, write_access, is_admin, created_at, updated_at, connected_at, basic_username, basic_password`

func (s *Store) bindUser(stmt *sqlite.Stmt, user *User) error {
	user.ID = stmt.ColumnInt64(0)
	user.Subject = stmt.ColumnText(1)
	user.Provider = stmt.ColumnText(2)
	user.Nickname = stmt.ColumnText(3)
	user.Email = stmt.ColumnText(4)
	user.ReadAccess = stmt.ColumnBool(5)
	user.WriteAccess = stmt.ColumnBool(6)
	user.IsAdmin = stmt.ColumnBool(7)
	user.CreatedAt = time.Unix(stmt.ColumnInt64(8), 0)
	user.UpdatedAt = time.Unix(stmt.ColumnInt64(9), 0)
	user.ConnectedAt = time.Unix(stmt.ColumnInt64(10), 0)
	user.BasicUsername = stmt.ColumnText(11)

	user.BasicPassword = make([]byte, stmt.ColumnLen(12))
	stmt.ColumnBytes(12, user.BasicPassword)

	return nil
}
