package hamming_dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddedDistance(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"single substitution", "abc", "abd", 1},
		{"shorter padded with spaces", "ab", "abcd", 2},
		{"both empty", "", "", 0},
		{"one empty", "", "xyz", 3},
		{"identical", "GAGCCT", "GAGCCT", 0},
		{"all different", "AAA", "TTT", 3},
		{"trailing space matches padding", "ab ", "ab", 0},
		{"usernames", "biodata_user", "data_science", 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PaddedDistance(tc.a, tc.b))
		})
	}
}

func TestPaddedDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"ab", "abcd"},
		{"", "xyz"},
		{"GAGCCT", "CATCGT"},
		{"a b", "ab"},
	}

	for _, p := range pairs {
		assert.Equal(t, PaddedDistance(p[0], p[1]), PaddedDistance(p[1], p[0]),
			"distance(%q, %q) not symmetric", p[0], p[1])
	}
}
