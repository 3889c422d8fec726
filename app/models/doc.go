// Package models holds the blog domain: users own blogs, blogs own posts and
// posts own comments. Back-references (post to blog, comment to post and
// author) are lookups only; ownership is the one-way tree.
//
// The package does no I/O and no locking. Callers that share a tree between
// goroutines serialize access themselves.
package models
