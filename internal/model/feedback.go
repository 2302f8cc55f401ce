package model

import "time"

// FeedbackMessage is one entry of the capped feedback log. The id is derived
// from the creation timestamp (unix milliseconds), matching content ids.
type FeedbackMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
