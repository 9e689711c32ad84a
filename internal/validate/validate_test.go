package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"whitespace mix", "\t\n  \r\n", true},
		{"plain text", "I am thrilled!", false},
		{"padded text", "  hello  ", false},
		{"max length", strings.Repeat("a", MaxChars), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.text)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "Please enter some text", vErr.Error())
		})
	}
}

func TestClamp(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "hello", Clamp("hello"))
	})

	t.Run("long ascii truncated", func(t *testing.T) {
		got := Clamp(strings.Repeat("x", MaxChars+100))
		assert.Equal(t, MaxChars, Length(got))
	})

	t.Run("multibyte counted as characters", func(t *testing.T) {
		text := strings.Repeat("é", MaxChars) + "ü"
		got := Clamp(text)
		assert.Equal(t, MaxChars, Length(got))
		assert.Equal(t, strings.Repeat("é", MaxChars), got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Clamp(strings.Repeat("ab", MaxChars))
		assert.Equal(t, once, Clamp(once))
	})
}

func TestClamp_NeverExceedsBound(t *testing.T) {
	for _, n := range []int{0, 1, MaxChars - 1, MaxChars, MaxChars + 1, 3 * MaxChars} {
		assert.LessOrEqual(t, Length(Clamp(strings.Repeat("😊", n))), MaxChars)
	}
}
