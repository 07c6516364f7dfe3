package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
)

type engagementRepo struct {
	db querier
}

func (r *engagementRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, author_id, content, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.AuthorID, p.Content, p.CreatedAt)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *engagementRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	var p domain.Post
	err := r.db.QueryRowContext(ctx,
		`SELECT id, author_id, content, created_at FROM posts WHERE id = ?`, id).
		Scan(&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *engagementRepo) AddLike(ctx context.Context, postID, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO likes (post_id, user_id, created_at) VALUES (?, ?, ?)`,
		postID, userID, at)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *engagementRepo) CountPostsByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE author_id = ?`, authorID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepo) CountLikesReceived(ctx context.Context, authorID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM likes l
		 JOIN posts p ON p.id = l.post_id
		 WHERE p.author_id = ?`, authorID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
