package domain

import "time"

// Post belongs to the engagement side of the system. Only the fields the
// stats aggregation and the write path need are modelled here.
type Post struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

// Like marks that a user liked a post. One like per (post, user) pair.
type Like struct {
	PostID    string
	UserID    string
	CreatedAt time.Time
}
