package api

import (
	"github.com/phrazzld/redlib-api/internal/collections"
	"github.com/phrazzld/redlib-api/internal/domain"
)

// SubredditResponse is the payload for a subreddit listing.
type SubredditResponse struct {
	Subreddit domain.Subreddit `json:"subreddit"`
	Posts     []domain.Post    `json:"posts"`
	After     *string          `json:"after"`
}

// PostResponse is the payload for a single post and its comment thread.
type PostResponse struct {
	Post     domain.Post      `json:"post"`
	Comments []domain.Comment `json:"comments"`
}

// UserResponse is the payload for a user's submissions.
type UserResponse struct {
	User  domain.User   `json:"user"`
	Posts []domain.Post `json:"posts"`
	After *string       `json:"after"`
}

// SearchResponse is the payload for search results.
type SearchResponse struct {
	Posts []domain.Post `json:"posts"`
	After *string       `json:"after"`
}

// WikiResponse is the payload for a rendered wiki page.
type WikiResponse struct {
	Subreddit string `json:"subreddit"`
	Page      string `json:"page"`
	Content   string `json:"content"`
}

// DuplicatesResponse is the payload for a post's crossposts.
type DuplicatesResponse struct {
	Post       domain.Post   `json:"post"`
	Duplicates []domain.Post `json:"duplicates"`
}

// CollectionsResponse lists every configured collection.
type CollectionsResponse struct {
	Collections []collections.Collection `json:"collections"`
}

// CollectionResponse is a single resolved collection.
type CollectionResponse struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}
