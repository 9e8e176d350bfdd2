package entity

import "time"

// User is the core entity of the profile directory. The email address is the
// only identifier; there is no surrogate key. Matching is case-insensitive
// while the stored value keeps the casing used at registration.
type User struct {
	Email        string    `json:"email"`     // Primary key, case-preserving.
	PasswordHash string    `json:"-"`         // bcrypt hash, never serialized.
	Name         string    `json:"name"`      // Display name.
	Address      string    `json:"address"`   // Delivery address.
	Phone        string    `json:"phone"`     // Contact phone, optional.
	BirthDate    time.Time `json:"birthDate"` // Used for the directory age statistics.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of registration.
}

// Age returns the user's age in full calendar years at the given moment,
// adjusted for whether the birthday has occurred yet this year.
func (u *User) Age(now time.Time) int {
	years := now.Year() - u.BirthDate.Year()
	birthdayThisYear := time.Date(now.Year(), u.BirthDate.Month(), u.BirthDate.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(birthdayThisYear) {
		years--
	}

	return years
}
