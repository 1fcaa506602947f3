// Package queue defines message payloads exchanged over the message broker,
// the best-effort publisher, and the notification consumer.
package queue

// UserRegisteredEvent is published after a new account is created. Downstream
// consumers use it to send welcome mail or feed analytics without querying
// the primary database.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	RegisteredAt string `json:"registered_at"`
}

// ArticlePublishedEvent is published when an article first becomes visible,
// either created with published=true or flipped from draft to published.
type ArticlePublishedEvent struct {
	ArticleID   uint64 `json:"article_id"`
	Title       string `json:"title"`
	AuthorID    uint64 `json:"author_id"`
	PublishedAt string `json:"published_at"`
}
