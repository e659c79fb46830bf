package uploads

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1692000000/buzzline/post/abc123.jpg", "buzzline/post/abc123"},
		{"https://res.cloudinary.com/demo/image/upload/buzzline/avatar/xyz.png", "buzzline/avatar/xyz"},
		{"https://example.com/not/cloudinary.jpg", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := PublicIDFromURL(c.url); got != c.want {
			t.Errorf("PublicIDFromURL(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}
