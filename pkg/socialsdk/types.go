package socialsdk

import "time"

// ToggleFollowResponse reports the follow state after a toggle.
type ToggleFollowResponse struct {
	Success     bool `json:"success"`
	IsFollowing bool `json:"is_following"`
}

// DirectoryEntry is one row of a directory search result. IsFollowing is
// relative to the authenticated viewer and always false for anonymous
// callers.
type DirectoryEntry struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	FollowerCount  int    `json:"follower_count"`
	IsFollowing    bool   `json:"is_following"`
	RecentActivity bool   `json:"recent_activity"`
	IsNewUser      bool   `json:"is_new_user"`
}

type DirectoryResponse struct {
	Users []DirectoryEntry `json:"users"`
}

// SuggestionEntry is one recommended account. Enough fields come back that
// the caller never needs a second lookup to render it.
type SuggestionEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	FollowerCount int    `json:"follower_count"`
}

type SuggestionsResponse struct {
	Users []SuggestionEntry `json:"users"`
}

// UserStatsResponse is the four-counter activity snapshot.
type UserStatsResponse struct {
	PostsCreated   int `json:"posts_created"`
	PeopleFollowed int `json:"people_followed"`
	LikesReceived  int `json:"likes_received"`
	Followers      int `json:"followers"`
}

// DirectoryOverviewResponse carries the aggregate counters for the directory
// header.
type DirectoryOverviewResponse struct {
	TotalUsers  int `json:"total_users"`
	ActiveToday int `json:"active_today"`
	NewThisWeek int `json:"new_this_week"`
}

type RegisterUserRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

type CreatePostRequest struct {
	Content string `json:"content"`
}

type PostResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
