package blog

import "time"

// Post is a single blog entry. Listing order is newest first.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Excerpt   string    `db:"excerpt" json:"excerpt"`
	Content   string    `db:"content" json:"content"`
	Author    string    `db:"author" json:"author"`
	Category  string    `db:"category" json:"category"`
	Tags      []string  `db:"tags" json:"tags"`
	Image     string    `db:"image" json:"image"`
	ReadTime  string    `db:"read_time" json:"readTime"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
