package domain

import "time"

// User is a directory profile. Identity and credentials live with the
// upstream auth provider; this service only mirrors the public profile fields
// it needs for discovery and keeps them read-only apart from activity bumps.
type User struct {
	ID           string
	Username     string // unique, case-insensitive
	DisplayName  string
	AvatarURL    string
	JoinedAt     time.Time
	LastActiveAt time.Time
}

// DirectoryUser is a user row joined with its live follower count. The
// viewer-relative flags are layered on top by the directory service.
type DirectoryUser struct {
	User
	FollowerCount int
}

// DirectorySummary is the per-viewer read model for a directory entry. It is
// recomputed on every read and never persisted.
type DirectorySummary struct {
	User
	FollowerCount  int
	IsFollowing    bool
	RecentActivity bool
	IsNewUser      bool
}

// UserStats is the four-counter activity snapshot for a single user. The
// counters are read in separate queries, so a mutation landing between two of
// them shows up as short-lived skew rather than an error.
type UserStats struct {
	PostsCreated   int
	PeopleFollowed int
	LikesReceived  int
	Followers      int
}

// DirectoryOverview holds the aggregate counters shown above the directory
// listing.
type DirectoryOverview struct {
	TotalUsers  int
	ActiveToday int
	NewThisWeek int
}
