package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  bool
	}{
		{"plain ten digits", "0701234567", true},
		{"spaces stripped", "070 123 45 67", true},
		{"tab stripped", "070\t1234567", true},
		{"dash not stripped", "070-1234567", false},
		{"dashes and spaces", "070-123 45 67", false},
		{"too short", "12345", false},
		{"too long", "07012345678", false},
		{"letters", "070123456a", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidPhone(tc.phone))
		})
	}
}
