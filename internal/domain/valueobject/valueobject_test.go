package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogforge/internal/domain/domainerr"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"valid", "John", ""},
		{"valid at minimum", "Jo", ""},
		{"valid at maximum", strings.Repeat("a", 30), ""},
		{"empty", "", "First Name cannot be empty."},
		{"whitespace only", "   ", "First Name cannot be empty."},
		{"too short", "J", "First Name must be at least 2 characters long."},
		{"too long", strings.Repeat("a", 31), "First Name cannot exceed 30 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewFirstName(tt.value)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.value), n.String())
				return
			}
			require.Error(t, err)
			assert.True(t, domainerr.IsInvalidData(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}

	t.Run("stores the trimmed value", func(t *testing.T) {
		n, err := NewFirstName("  John  ")
		require.NoError(t, err)
		assert.Equal(t, "John", n.String())
	})

	t.Run("lengths count runes, not bytes", func(t *testing.T) {
		_, err := NewFirstName("日本")
		assert.NoError(t, err)
	})

	t.Run("username bounds differ from names", func(t *testing.T) {
		_, err := NewUsername("ab")
		require.Error(t, err)
		assert.Equal(t, "Username must be at least 3 characters long.", err.Error())

		_, err = NewUsername(strings.Repeat("a", 21))
		require.Error(t, err)
		assert.Equal(t, "Username cannot exceed 20 characters.", err.Error())

		_, err = NewUsername("abc")
		assert.NoError(t, err)
	})

	t.Run("last name uses its own label", func(t *testing.T) {
		_, err := NewLastName("")
		require.Error(t, err)
		assert.Equal(t, "Last Name cannot be empty.", err.Error())
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Str0ng!pass", ""},
		{"empty", "", "Password cannot be empty."},
		{"too short", "Ab1!", "Password must be at least 8 characters long."},
		{"no digit", "Abcdefgh!", "Password must contain at least one digit."},
		{"no uppercase", "abcdefg1!", "Password must contain at least one uppercase letter."},
		{"no lowercase", "ABCDEFG1!", "Password must contain at least one lowercase letter."},
		{"no special", "Abcdefg1", "Password must contain at least one special character."},
		{"tilde counts as special", "Abcdefg1~", ""},
		{"backtick counts as special", "Abcdefg1`", ""},
		{"space is not special", "Abcdefg1 ", "Password must contain at least one special character."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domainerr.IsInvalidData(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}

	t.Run("length check wins over character checks", func(t *testing.T) {
		// 7 chars, also missing a digit: the length message is reported
		err := ValidatePasswordStrength("Abcdef!")
		require.Error(t, err)
		assert.Equal(t, "Password must be at least 8 characters long.", err.Error())
	})
}

func TestNewTitle(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"valid", "Hello world", ""},
		{"valid at minimum", "Hello", ""},
		{"valid at maximum", strings.Repeat("t", 100), ""},
		{"empty", "", "Title cannot be empty."},
		{"too short", "Hey", "Title must be at least 5 characters long."},
		{"too long", strings.Repeat("t", 101), "Title cannot exceed 100 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTitle(tt.value)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestNewContent(t *testing.T) {
	t.Run("rejects empty content", func(t *testing.T) {
		_, err := NewContent("  ")
		require.Error(t, err)
		assert.Equal(t, "Content cannot be empty.", err.Error())
	})

	t.Run("has no upper bound", func(t *testing.T) {
		_, err := NewContent(strings.Repeat("long ", 100000))
		assert.NoError(t, err)
	})
}

func TestPassword(t *testing.T) {
	p := NewPassword("some-hash")
	assert.Equal(t, "some-hash", p.Hash())
}
