package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"admin@sd13academy.com", "fan.name+tag@example.co"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	for rating := RatingMin; rating <= RatingMax; rating++ {
		if !IsValidRating(rating) {
			t.Errorf("expected rating %d to be valid", rating)
		}
	}
	for _, rating := range []int{0, -3, 6} {
		if IsValidRating(rating) {
			t.Errorf("expected rating %d to be invalid", rating)
		}
	}
}

func TestIsValidEventType(t *testing.T) {
	for _, v := range []string{"tournament", "training", "workshop", "other"} {
		if !IsValidEventType(v) {
			t.Errorf("expected %q to be accepted", v)
		}
	}
	for _, v := range []string{"", "match", "Tournament"} {
		if IsValidEventType(v) {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}
