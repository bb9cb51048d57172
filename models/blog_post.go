package models

import (
	"time"
)

// BlogPost is authored by admins. A post is publicly visible only when
// Published is 1; PublishedAt is stamped the first time it is published.
type BlogPost struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug" gorm:"uniqueIndex"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"` // markdown
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	FeaturedImage string     `json:"featuredImage"`
	Published     int        `json:"published" gorm:"default:0"`
	PublishedAt   *time.Time `json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// IsPublished reports whether the post is publicly visible.
func (p *BlogPost) IsPublished() bool {
	return p.Published == 1
}
