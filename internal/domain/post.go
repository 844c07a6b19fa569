package domain

// Post is a single submission as returned by the JSON API.
type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	Body        string  `json:"body"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	NSFW        bool    `json:"nsfw"`
	CreatedUTC  float64 `json:"created_utc"`
	// BodyTruncated is nil unless Body was shortened.
	BodyTruncated *bool `json:"body_truncated,omitempty"`
}

// TextBody returns the post's long-form text.
// A nil Post has no body.
func (p *Post) TextBody() string {
	if p == nil {
		return ""
	}
	return p.Body
}

// SetTruncatedBody replaces the body with a shortened version and marks it.
func (p *Post) SetTruncatedBody(body string) {
	if p == nil {
		return
	}
	p.Body = body
	p.BodyTruncated = truePtr()
}

// Comment is a single comment in a post's thread.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	Author     string    `json:"author"`
	Body       string    `json:"body"`
	Score      int       `json:"score"`
	Depth      int       `json:"depth"`
	CreatedUTC float64   `json:"created_utc"`
	Replies    []Comment `json:"replies,omitempty"`
	// BodyTruncated is nil unless Body was shortened.
	BodyTruncated *bool `json:"body_truncated,omitempty"`
}

// TextBody returns the comment text.
// A nil Comment has no body.
func (c *Comment) TextBody() string {
	if c == nil {
		return ""
	}
	return c.Body
}

// SetTruncatedBody replaces the body with a shortened version and marks it.
func (c *Comment) SetTruncatedBody(body string) {
	if c == nil {
		return
	}
	c.Body = body
	c.BodyTruncated = truePtr()
}

func truePtr() *bool {
	t := true
	return &t
}
