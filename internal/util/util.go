// Package util holds small shared helpers with no domain dependencies.
package util

import (
	"fmt"
	"regexp"
	"time"
)

var phonePattern = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)

// IsValidDeliveryTime reports whether the requested delivery time leaves at
// least the given lead over now.
func IsValidDeliveryTime(deliveryTime, now time.Time, minLead time.Duration) bool {
	return deliveryTime.After(now.Add(minLead))
}

// IsPhoneNumberValid reports whether the phone matches the shop's expected
// format, "+7 (XXX) XXX-XX-XX".
func IsPhoneNumberValid(phone string) bool {
	return phonePattern.MatchString(phone)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
