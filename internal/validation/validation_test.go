package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid alphanumeric with underscore", "abc_123", false},
		{"valid all letters", "alice", false},
		{"valid leading underscore", "_alice", false},
		{"contains space", "abc def", true},
		{"contains hyphen", "abc-def", true},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 31), true},
		{"max length ok", strings.Repeat("a", 30), false},
		{"contains dot", "abc.def", true},
		{"contains unicode", "アリス", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.example.co"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@x.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("hunter2hunter2"))
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword("allletters"))
	assert.Error(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword(strings.Repeat("a1", 70)))
}

func TestValidateContent(t *testing.T) {
	got, err := ValidateContent("  hello  ", 280)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = ValidateContent("   ", 280)
	assert.Error(t, err)

	_, err = ValidateContent("", 280)
	assert.Error(t, err)

	// Rune count, not byte count: 280 multibyte characters are allowed.
	_, err = ValidateContent(strings.Repeat("あ", 280), 280)
	assert.NoError(t, err)

	_, err = ValidateContent(strings.Repeat("a", 281), 280)
	assert.Error(t, err)
}
