package model

import (
	"time"

	"github.com/uptrace/bun"
)

// User represents an application user record as stored in the `users` table.
// The password column stores a bcrypt hash only; the json:"-" tag keeps it
// out of every HTTP response, so a user can be rendered directly by the
// handlers without a separate response type.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	ID        uint64    `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Email     string    `bun:"email,notnull,unique" json:"email"`
	Password  string    `bun:"password,notnull" json:"-"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
