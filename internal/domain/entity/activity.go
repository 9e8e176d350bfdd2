package entity

import "time"

// Activity records the last login event seen for a user. It is upserted on
// every login-activity event, so LastLogin always reflects the most recent one.
type Activity struct {
	Email     string    `json:"email"`
	LastLogin time.Time `json:"lastLogin"`
}
