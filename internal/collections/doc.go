// Package collections maps operator-defined aliases to groups of subreddits.
//
// The mapping is read from a single setting, REDLIB_COLLECTIONS, formatted as
// semicolon-separated alias=target pairs:
//
//	ai=singularity+claude;news = worldnews+technology
//
// Malformed entries are dropped rather than reported, so a bad alias never
// prevents the server from starting.
package collections
