package util

import (
	"testing"
	"time"
)

func TestIsPhoneNumberValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phone    string
		expected bool
	}{
		{name: "well formed", phone: "+7 (912) 345-67-89", expected: true},
		{name: "all zeroes", phone: "+7 (000) 000-00-00", expected: true},
		{name: "missing plus", phone: "7 (912) 345-67-89", expected: false},
		{name: "wrong country code", phone: "+8 (912) 345-67-89", expected: false},
		{name: "no parentheses", phone: "+7 912 345-67-89", expected: false},
		{name: "too few digits", phone: "+7 (912) 345-67-8", expected: false},
		{name: "trailing garbage", phone: "+7 (912) 345-67-89x", expected: false},
		{name: "empty", phone: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsPhoneNumberValid(tt.phone); got != tt.expected {
				t.Fatalf("IsPhoneNumberValid(%q) = %v, want %v", tt.phone, got, tt.expected)
			}
		})
	}
}

func TestIsValidDeliveryTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lead := 30 * time.Minute

	tests := []struct {
		name     string
		delivery time.Time
		expected bool
	}{
		{name: "well past the lead", delivery: now.Add(2 * time.Hour), expected: true},
		{name: "just past the lead", delivery: now.Add(30*time.Minute + time.Second), expected: true},
		{name: "exactly at the lead", delivery: now.Add(30 * time.Minute), expected: false},
		{name: "inside the lead", delivery: now.Add(10 * time.Minute), expected: false},
		{name: "in the past", delivery: now.Add(-time.Hour), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValidDeliveryTime(tt.delivery, now, lead); got != tt.expected {
				t.Fatalf("IsValidDeliveryTime(%s) = %v, want %v", tt.delivery, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
