package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Ratings are a 1-5 star scale
	RatingMin = 1
	RatingMax = 5
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidRating reports whether the value is a valid testimonial rating
func IsValidRating(value int) bool {
	return value >= RatingMin && value <= RatingMax
}

// EventTypes lists the accepted event_type values
var EventTypes = map[string]bool{
	"tournament": true,
	"training":   true,
	"workshop":   true,
	"other":      true,
}

// IsValidEventType reports whether the value is an accepted event type
func IsValidEventType(value string) bool {
	return EventTypes[value]
}
