package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	assert.Nil(t, NormalizeTags(nil))
	assert.Nil(t, NormalizeTags([]string{"", "  "}))
	assert.Equal(t, []string{"rpg", "indie"}, NormalizeTags([]string{" rpg ", "indie", "RPG", ""}))
}

func TestTagsRoundTrip(t *testing.T) {
	assert.Equal(t, "[]", TagsToString(nil))
	assert.Nil(t, StringToTags("[]"))
	assert.Nil(t, StringToTags(""))

	s := TagsToString([]string{"jam", "pixel-art"})
	assert.Equal(t, []string{"jam", "pixel-art"}, StringToTags(s))
}

func TestStringToTagsFallback(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringToTags("a,b"))
}
