package models

import "time"

// GuideArticle is a guide entry sourced from the spreadsheet content backend.
// Rows are keyed by slug; the sheet is the source of truth and articles are
// rebuilt on every fetch.
type GuideArticle struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Body        string   `json:"body"`
	Category    string   `json:"category"`
	HeroImage   string   `json:"heroImage"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
}

// BlogPost is a blog entry stored in the database.
type BlogPost struct {
	ID          string    `bson:"id" json:"id"`
	Slug        string    `bson:"slug" json:"slug"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Body        string    `bson:"body" json:"body"`
	Author      string    `bson:"author" json:"author"`
	CoverImage  string    `bson:"coverImage" json:"coverImage"`
	Tags        []string  `bson:"tags" json:"tags"`
	Published   bool      `bson:"published" json:"published"`
	PublishedAt time.Time `bson:"publishedAt" json:"publishedAt,omitzero"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
