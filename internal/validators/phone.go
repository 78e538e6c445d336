package validators

import "regexp"

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	whitespace   = regexp.MustCompile(`\s`)
)

// IsValidPhone checks a customer phone number: stripped of whitespace it
// must be exactly 10 decimal digits. Only whitespace is stripped, so
// "070-1234567" is rejected while "070 123 45 67" passes.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(whitespace.ReplaceAllString(phone, ""))
}
