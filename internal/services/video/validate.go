package video

import "regexp"

// Accepted YouTube URL shapes. Matches are anchored at the start and case
// insensitive; anything after the video ID (query params, extra path
// segments) is permitted and ignored.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/watch\?v=[\w-]+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtu\.be/[\w-]+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/embed/[\w-]+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/v/[\w-]+`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/shorts/[\w-]+`),
}

// IsValidYouTubeURL reports whether the normalized URL matches one of the
// accepted YouTube URL shapes.
func IsValidYouTubeURL(url string) bool {
	for _, pattern := range youtubePatterns {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}
