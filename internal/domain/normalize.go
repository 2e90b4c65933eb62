package domain

import "strings"

// NormalizeEmail trims and lowercases an email address for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername trims surrounding whitespace; usernames keep their case.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
