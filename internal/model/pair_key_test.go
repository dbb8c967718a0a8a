package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPairKeyOrderInvariant(t *testing.T) {
	cases := []struct {
		x, y string
		want PairKey
	}{
		{"th", "he", PairKey{A: "he", B: "th"}},
		{"he", "th", PairKey{A: "he", B: "th"}},
		{"ab", "cd", PairKey{A: "ab", B: "cd"}},
		{"cd", "ab", PairKey{A: "ab", B: "cd"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewPairKey(c.x, c.y))
	}

	assert.Equal(t, NewPairKey("fr", "vr"), NewPairKey("vr", "fr"))
}

func TestPairKeyOther(t *testing.T) {
	key := NewPairKey("th", "he")
	assert.Equal(t, "th", key.Other("he"))
	assert.Equal(t, "he", key.Other("th"))
}

func TestPairKeyLess(t *testing.T) {
	assert.True(t, NewPairKey("ab", "cd").Less(NewPairKey("ab", "ce")))
	assert.True(t, NewPairKey("aa", "zz").Less(NewPairKey("ab", "ac")))
	assert.False(t, NewPairKey("th", "he").Less(NewPairKey("he", "th")))
}
