package sqlite

import (
	"context"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
)

type followsRepo struct {
	db querier
}

func (r *followsRepo) CreateEdge(ctx context.Context, e domain.FollowEdge) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO follows (follower_id, followee_id, created_at) VALUES (?, ?, ?)`,
		e.FollowerID, e.FolloweeID, e.CreatedAt)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *followsRepo) DeleteEdge(ctx context.Context, followerID, followeeID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = ? AND followee_id = ?`,
		followerID, followeeID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *followsRepo) EdgeExists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = ? AND followee_id = ?)`,
		followerID, followeeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *followsRepo) CountFollowers(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE followee_id = ?`, userID)
}

func (r *followsRepo) CountFollowing(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = ?`, userID)
}

func (r *followsRepo) ListFolloweeIDs(ctx context.Context, followerID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT followee_id FROM follows WHERE follower_id = ? ORDER BY followee_id`,
		followerID)
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

func (r *followsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
