package video

import "strings"

// NormalizeURL percent-decodes the raw input and ensures a scheme prefix.
// Decoding is lenient per escape: each valid %XX pair is decoded while
// malformed escapes pass through unchanged. The function is total and
// idempotent on already-normalized https URLs.
func NormalizeURL(raw string) string {
	normalized := percentDecode(strings.TrimSpace(raw))

	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}

// percentDecode decodes %XX escapes byte by byte. net/url's unescape
// functions reject the whole input on the first malformed escape; here a
// bad escape is copied through and decoding continues. '+' is left as-is.
func percentDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
