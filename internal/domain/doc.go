// Package domain contains the reddit entities rendered by the JSON API:
// posts, comments, subreddits and users. Fetching and rendering them lives
// elsewhere; this package only defines their serialized shape.
package domain
