package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tradesim-dev/tradesim/internal/models"
)

func TestParseShares(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10", 10, true},
		{"1", 1, true},
		{"10.0", 10, true},
		{" 7 ", 7, true},
		{"10.5", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"3 shares", 0, false},
		{"9223372036854775807", 9223372036854775807, true},
		{"9223372036854775808", 0, false},
		{"18446744073709551617", 0, false},
	}
	for _, c := range cases {
		got, err := ParseShares(c.in)
		if c.ok {
			assert.NoError(t, err, "input %q", c.in)
			assert.Equal(t, c.want, got, "input %q", c.in)
		} else {
			assert.ErrorIs(t, err, models.ErrInvalidShares, "input %q", c.in)
		}
	}
}
