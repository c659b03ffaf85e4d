package video

import "testing"

func TestNormalizeURL(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "already normalized",
			raw:  "https://www.youtube.com/watch?v=abc123",
			want: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name: "missing scheme",
			raw:  "youtube.com/watch?v=abc123",
			want: "https://youtube.com/watch?v=abc123",
		},
		{
			name: "http scheme preserved",
			raw:  "http://youtu.be/abc123",
			want: "http://youtu.be/abc123",
		},
		{
			name: "percent-encoded input",
			raw:  "https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Dabc123",
			want: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name: "plus sign survives decoding",
			raw:  "youtube.com/watch?v=a+b",
			want: "https://youtube.com/watch?v=a+b",
		},
		{
			name: "malformed escape passes through",
			raw:  "youtube.com/watch?v=abc%zz",
			want: "https://youtube.com/watch?v=abc%zz",
		},
		{
			name: "valid escapes decoded alongside malformed one",
			raw:  "youtube.com/watch%3Fv%3Dabc%zz",
			want: "https://youtube.com/watch?v=abc%zz",
		},
		{
			name: "truncated escape at end passes through",
			raw:  "youtube.com/watch?v=abc%3",
			want: "https://youtube.com/watch?v=abc%3",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  https://youtu.be/abc123 ",
			want: "https://youtu.be/abc123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeURL(tc.raw)
			if got != tc.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeURLIdempotent(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://youtu.be/abc123",
		"https://www.youtube.com/shorts/abc123?feature=share",
	}

	for _, url := range urls {
		once := NormalizeURL(url)
		twice := NormalizeURL(once)
		if once != twice {
			t.Errorf("NormalizeURL not idempotent for %q: %q != %q", url, once, twice)
		}
	}
}
