package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+14155551234"))
	assert.True(t, ValidatePhone("+52 555 123 4567"))
	assert.True(t, ValidatePhone("4155551234"))
	assert.False(t, ValidatePhone("0123"))
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone(""))
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed case", input: "Alice@Example.com", want: "alice@example.com"},
		{name: "surrounding whitespace", input: "  bob@example.com \n", want: "bob@example.com"},
		{name: "already normalized", input: "carol@example.com", want: "carol@example.com"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, NormalizeEmail(testCase.input))
		})
	}
}

func TestNormalizeEmailIdempotent(t *testing.T) {
	// Registration stores the normalized form; login normalizes again before
	// the lookup. Both sides must land on the same value.
	stored := NormalizeEmail("Alice@Example.com")
	assert.Equal(t, stored, NormalizeEmail(stored))
	assert.Equal(t, stored, NormalizeEmail("ALICE@EXAMPLE.COM"))
}

func TestBeginningAndEndOfDay(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.UTC)

	start := BeginningOfDay(ts)
	end := EndOfDay(ts)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(ts))
	assert.Equal(t, 14, end.Day())
	assert.Equal(t, 23, end.Hour())
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 4, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(6)
	assert.Len(t, s, 6)

	for _, r := range s {
		assert.Contains(t, randomCharset, string(r))
	}

	// Two draws colliding at this length is astronomically unlikely.
	assert.NotEqual(t, GenerateRandomString(12), GenerateRandomString(12))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}
