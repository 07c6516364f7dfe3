package socialsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a thin HTTP client for the social service. A token is optional;
// without one only the public read endpoints work.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewClient creates a client for the service at baseURL. Pass an empty token
// for anonymous access.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Token: token,
	}
}

// ToggleFollow flips the caller's follow edge to the target user.
func (c *Client) ToggleFollow(ctx context.Context, targetUserID string) (ToggleFollowResponse, error) {
	var out ToggleFollowResponse
	err := c.do(ctx, http.MethodPost, "/v1/users/"+url.PathEscape(targetUserID)+"/follow", nil, &out)
	return out, err
}

// SearchDirectory runs a directory search. An empty query browses everyone,
// most recently active first.
func (c *Client) SearchDirectory(ctx context.Context, query string, limit int) (DirectoryResponse, error) {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	path := "/v1/directory"
	if encoded := v.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out DirectoryResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Suggestions returns up to count accounts the caller does not follow yet.
func (c *Client) Suggestions(ctx context.Context, count int) (SuggestionsResponse, error) {
	path := "/v1/suggestions"
	if count > 0 {
		path += "?count=" + strconv.Itoa(count)
	}

	var out SuggestionsResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// UserStats returns the activity snapshot for a user.
func (c *Client) UserStats(ctx context.Context, userID string) (UserStatsResponse, error) {
	var out UserStatsResponse
	err := c.do(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID)+"/stats", nil, &out)
	return out, err
}

// DirectoryOverview returns the aggregate directory counters.
func (c *Client) DirectoryOverview(ctx context.Context) (DirectoryOverviewResponse, error) {
	var out DirectoryOverviewResponse
	err := c.do(ctx, http.MethodGet, "/v1/directory/overview", nil, &out)
	return out, err
}

// RegisterUser creates a directory profile.
func (c *Client) RegisterUser(ctx context.Context, req RegisterUserRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/users", req, &out)
	return out, err
}

// CreatePost publishes a post as the authenticated caller.
func (c *Client) CreatePost(ctx context.Context, content string) (PostResponse, error) {
	var out PostResponse
	err := c.do(ctx, http.MethodPost, "/v1/posts", CreatePostRequest{Content: content}, &out)
	return out, err
}

// LikePost records the caller's like on a post.
func (c *Client) LikePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodPost, "/v1/posts/"+url.PathEscape(postID)+"/like", nil, nil)
}

// do runs one request/response cycle: marshal the body when present, attach
// the bearer token, and decode either the success payload or an APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
