package entity

import "time"

// Post is a blog post. Slug is free text and not unique.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Slug       string    `json:"slug"`
	DatePosted time.Time `json:"date_posted"`
}
