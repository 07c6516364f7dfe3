package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
)

type usersRepo struct {
	db querier
}

const userColumns = `id, username, display_name, avatar_url, joined_at, last_active_at`

// directoryColumns extends userColumns with a correlated follower count so a
// directory page is a single query.
const directoryColumns = userColumns + `,
	(SELECT COUNT(*) FROM follows f WHERE f.followee_id = users.id) AS follower_count`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	// username is declared COLLATE NOCASE, so this lookup is already
	// case-insensitive.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, display_name, avatar_url, joined_at, last_active_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.DisplayName, u.AvatarURL, u.JoinedAt, u.LastActiveAt)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) TouchLastActive(ctx context.Context, userID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_active_at = ? WHERE id = ?`, at, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) SearchUsers(ctx context.Context, query string, limit int) ([]domain.DirectoryUser, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if query == "" {
		// Browse mode: most recently active first.
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+directoryColumns+` FROM users
			 ORDER BY last_active_at DESC, username ASC
			 LIMIT ?`, limit)
	} else {
		// LIKE is case-insensitive for ASCII in sqlite, which matches the
		// case-folding the service already applied to the needle.
		needle := "%" + escapeLike(query) + "%"
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+directoryColumns+` FROM users
			 WHERE username LIKE ? ESCAPE '\' OR display_name LIKE ? ESCAPE '\'
			 ORDER BY username ASC
			 LIMIT ?`, needle, needle, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDirectoryUsers(rows)
}

func (r *usersRepo) GetDirectoryUsersByID(ctx context.Context, ids []string) ([]domain.DirectoryUser, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+directoryColumns+` FROM users WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDirectoryUsers(rows)
}

func (r *usersRepo) ListUserIDsExcluding(ctx context.Context, actorID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM users
		 WHERE id <> ?
		   AND id NOT IN (SELECT followee_id FROM follows WHERE follower_id = ?)
		 ORDER BY id`, actorID, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	return r.countWhere(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *usersRepo) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	return r.countWhere(ctx, `SELECT COUNT(*) FROM users WHERE last_active_at >= ?`, since)
}

func (r *usersRepo) CountJoinedSince(ctx context.Context, since time.Time) (int, error) {
	return r.countWhere(ctx, `SELECT COUNT(*) FROM users WHERE joined_at >= ?`, since)
}

func (r *usersRepo) countWhere(ctx context.Context, query string, args ...any) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.AvatarURL, &u.JoinedAt, &u.LastActiveAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func scanDirectoryUsers(rows *sql.Rows) ([]domain.DirectoryUser, error) {
	var out []domain.DirectoryUser
	for rows.Next() {
		var u domain.DirectoryUser
		err := rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.AvatarURL,
			&u.JoinedAt, &u.LastActiveAt, &u.FollowerCount)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
