package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/redlib-api/internal/api/shared"
	"github.com/phrazzld/redlib-api/internal/api/truncate"
	"github.com/phrazzld/redlib-api/internal/domain"
)

// Responder writes endpoint payloads as envelopes after applying the
// request's truncation option to their post and comment bodies.
type Responder struct {
	defaultLimit int
	logger       *slog.Logger
}

// NewResponder creates a Responder. defaultLimit is used when a request asks
// for truncation without naming a limit.
func NewResponder(defaultLimit int, logger *slog.Logger) *Responder {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Responder")
	}
	return &Responder{
		defaultLimit: defaultLimit,
		logger:       logger.With(slog.String("component", "responder")),
	}
}

// Limit returns the truncation limit requested by r, or nil for none.
func (rs *Responder) Limit(r *http.Request) (*int, error) {
	return truncate.ParseLimit(r.URL.Query(), rs.defaultLimit)
}

// Subreddit writes a subreddit listing.
func (rs *Responder) Subreddit(w http.ResponseWriter, r *http.Request, resp SubredditResponse) {
	respondTruncated(rs, w, r, &resp, func(limit *int) {
		truncate.Fields(resp.Posts, limit)
	})
}

// Post writes a post with its comment thread. Nested replies are truncated too.
func (rs *Responder) Post(w http.ResponseWriter, r *http.Request, resp PostResponse) {
	respondTruncated(rs, w, r, &resp, func(limit *int) {
		truncate.Field(&resp.Post, limit)
		truncateThread(resp.Comments, limit)
	})
}

// User writes a user's submissions.
func (rs *Responder) User(w http.ResponseWriter, r *http.Request, resp UserResponse) {
	respondTruncated(rs, w, r, &resp, func(limit *int) {
		truncate.Fields(resp.Posts, limit)
	})
}

// Search writes search results.
func (rs *Responder) Search(w http.ResponseWriter, r *http.Request, resp SearchResponse) {
	respondTruncated(rs, w, r, &resp, func(limit *int) {
		truncate.Fields(resp.Posts, limit)
	})
}

// Duplicates writes a post and its duplicates.
func (rs *Responder) Duplicates(w http.ResponseWriter, r *http.Request, resp DuplicatesResponse) {
	respondTruncated(rs, w, r, &resp, func(limit *int) {
		truncate.Field(&resp.Post, limit)
		truncate.Fields(resp.Duplicates, limit)
	})
}

// Wiki writes a wiki page. Wiki content is never truncated.
func (rs *Responder) Wiki(w http.ResponseWriter, r *http.Request, resp WikiResponse) {
	shared.RespondWithData(w, r, resp)
}

// respondTruncated resolves the request's limit, lets apply shorten the
// payload's bodies, and writes the result. apply must mutate the value
// payload points to.
func respondTruncated[T any](rs *Responder, w http.ResponseWriter, r *http.Request, payload *T, apply func(limit *int)) {
	limit, err := rs.Limit(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid truncate parameter", err)
		return
	}
	if limit != nil {
		rs.logger.Debug("truncating response bodies",
			slog.String("path", r.URL.Path),
			slog.Int("limit", *limit))
		apply(limit)
	}
	shared.RespondWithData(w, r, payload)
}

func truncateThread(comments []domain.Comment, limit *int) {
	truncate.Fields(comments, limit)
	for i := range comments {
		truncateThread(comments[i].Replies, limit)
	}
}
