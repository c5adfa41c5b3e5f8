package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link with time", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ", true},
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch with fragment", "https://www.youtube.com/watch?v=dQw4w9WgXcQ#comments", "dQw4w9WgXcQ", true},
		{"watch with later params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL1234", "dQw4w9WgXcQ", true},
		{"v as second param", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ?version=3", "dQw4w9WgXcQ", true},
		{"user path", "https://www.youtube.com/u/w/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no scheme", "youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"empty", "", "", false},
		{"plain text", "not a url at all", "", false},
		{"other site", "https://example.com/watch", "", false},
		{"id too short", "https://youtu.be/abc", "", false},
		{"id cut by query", "https://youtu.be/dQw4w9?t=1", "", false},
		{"channel page", "https://www.youtube.com/@rickastley", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveVideoIDSameVideo(t *testing.T) {
	urls := []string{
		"https://youtu.be/9bZkp7q19f0",
		"https://www.youtube.com/watch?v=9bZkp7q19f0",
		"https://www.youtube.com/embed/9bZkp7q19f0",
		"https://www.youtube.com/v/9bZkp7q19f0",
		"https://m.youtube.com/watch?app=desktop&v=9bZkp7q19f0",
	}
	for _, u := range urls {
		got, ok := ResolveVideoID(u)
		assert.True(t, ok, u)
		assert.Equal(t, "9bZkp7q19f0", got, u)
	}
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", ThumbnailURL("dQw4w9WgXcQ"))
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", WatchURL("dQw4w9WgXcQ"))
}
