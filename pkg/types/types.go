package types

import (
	"time"
)

// Comment is a user-generated comment fetched from any platform. The
// moderation engine treats it as read-only input; platform adapters own its
// lifecycle.
type Comment struct {
	ID           string                 `json:"id"`
	Text         string                 `json:"text"`
	AuthorID     string                 `json:"author_id"`
	AuthorName   string                 `json:"author_name"`
	CreatedAt    time.Time              `json:"created_at"`
	Platform     string                 `json:"platform"`
	PostID       string                 `json:"post_id"`
	ParentID     string                 `json:"parent_id,omitempty"`
	Likes        int                    `json:"likes"`
	RepliesCount int                    `json:"replies_count"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// Post is the parent content a comment belongs to.
type Post struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Content       string                 `json:"content"`
	AuthorID      string                 `json:"author_id"`
	AuthorName    string                 `json:"author_name"`
	CreatedAt     time.Time              `json:"created_at"`
	Platform      string                 `json:"platform"`
	URL           string                 `json:"url"`
	Likes         int                    `json:"likes"`
	Shares        int                    `json:"shares"`
	CommentsCount int                    `json:"comments_count"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}
