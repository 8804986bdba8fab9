package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{"guest@example.com", "first.last+tag@mail-host.co.uk", "a_b@x.io"}
	invalid := []string{"", "plain", "no-at.example.com", "a@b", "a@@b.com", "a b@c.com"}

	for _, e := range valid {
		assert.True(t, IsEmailValid(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsEmailValid(e), e)
	}
}

func TestIsPasswordStrong(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"short1!", false},
		{"longenough123!", true},
		{"nodigitsatall!!", false},
		{"123456789012!", false},
		{"NoSymbolHere123", false},
		{"under_score123", false},
		{"spaces are 12 ", false},
		{"Ünïcödé-pass1", true},
		{"line\nbreak123!", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPasswordStrong(tt.password))
		})
	}
}
