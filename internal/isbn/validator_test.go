package isbn

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexValidator_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"isbn13 with hyphens", "978-4-7405-2824-6", true},
		{"isbn13 other groups", "978-7-6499-1995-5", true},
		{"isbn13 plain", "9780306406157", true},
		{"isbn13 with spaces", "978 0 306 40615 7", true},
		{"isbn13 with prefix", "ISBN-13: 978-0-306-40615-7", true},
		{"isbn10 with hyphens", "0-306-40615-2", true},
		{"isbn10 upper X", "080442957X", true},
		{"isbn10 lower x", "0-8044-2957-x", true},
		{"isbn10 with prefix", "ISBN 0-306-40615-2", true},
		{"letters in group", "978-7-6499-xxxx-5", false},
		{"empty", "", false},
		{"too short", "978-4-7405", false},
		{"too long", "978-4-7405-2824-61", false},
		{"double hyphen", "978--4-7405-2824-6", false},
		{"trailing hyphen", "978-4-7405-2824-6-", false},
		{"x inside isbn13", "978-4-7405-2824-X", false},
		{"surrounding text", "book 978-4-7405-2824-6", false},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValid(tt.candidate))
			assert.Equal(t, tt.want, IsValid(tt.candidate))
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidation(v))

	type payload struct {
		ISBN string `validate:"isbn"`
	}

	assert.NoError(t, v.Struct(payload{ISBN: "978-4-7405-2824-6"}))
	assert.Error(t, v.Struct(payload{ISBN: "978-7-6499-xxxx-5"}))
}
