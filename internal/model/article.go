package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Article represents a row in the `articles` table. An article may exist
// without an author (drafts imported from elsewhere), hence the nullable
// AuthorID. Author is loaded on demand via the bun relation.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a" json:"-"`

	ID          uint64    `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull,unique" json:"title"`
	Description *string   `bun:"description" json:"description"`
	Body        string    `bun:"body,notnull" json:"body"`
	Published   bool      `bun:"published,notnull,default:false" json:"published"`
	AuthorID    *uint64   `bun:"author_id" json:"author_id"`
	Author      *User     `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
