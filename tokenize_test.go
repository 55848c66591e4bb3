package tyrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_EmptyURIIsNotOK(t *testing.T) {
	_, ok := tokenize("")
	assert.False(t, ok)

	_, ok = tokenize("   ")
	assert.False(t, ok)
}

func TestTokenize_PathOnly(t *testing.T) {
	cases := []struct {
		uri  string
		want []string
	}{
		{"/", []string{""}},
		{"/home", []string{"home"}},
		{"/home/about", []string{"home", "about"}},
		{"/home/about/", []string{"home", "about", ""}},
	}
	for _, c := range cases {
		got, ok := tokenize(c.uri)
		assert.True(t, ok)
		assert.Equal(t, c.want, got, "tokenize(%q)", c.uri)
	}
}

func TestTokenize_WithQuery(t *testing.T) {
	got, ok := tokenize("/search?q=go&page=2")
	assert.True(t, ok)
	assert.Equal(t, []string{"search", "q", "go", "page", "2"}, got)
}

func TestTokenize_QueryWithBareKey(t *testing.T) {
	got, ok := tokenize("/search?verbose&q=go")
	assert.True(t, ok)
	assert.Equal(t, []string{"search", "verbose", "q", "go"}, got)
}

func TestSplitPath_DropsOnlyLeadingEmptySegment(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitPath("/a/b"))
	assert.Equal(t, []string{"a", "b", ""}, splitPath("/a/b/"))
	assert.Nil(t, splitPath(""))
}

func TestFlattenQuery(t *testing.T) {
	assert.Equal(t, []string{"a", "1", "b", "2"}, flattenQuery("a=1&b=2"))
	assert.Equal(t, []string{"flag"}, flattenQuery("flag"))
	assert.Nil(t, flattenQuery(""))
}
