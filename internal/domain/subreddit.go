package domain

// Subreddit describes a community's metadata.
type Subreddit struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Members     int    `json:"members"`
	Active      int    `json:"active"`
	Wiki        bool   `json:"wiki"`
	NSFW        bool   `json:"nsfw"`
}

// User describes a reddit account's public profile.
type User struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Icon        string  `json:"icon"`
	Karma       int     `json:"karma"`
	Created     string  `json:"created"`
	Description string  `json:"description"`
	NSFW        bool    `json:"nsfw"`
	CreatedUTC  float64 `json:"created_utc"`
}
