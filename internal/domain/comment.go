package domain

import "time"

// Comment is an entry of the stored XSS lab's append-only log.
type Comment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"date"`
}
