package extractor

import (
	"strings"

	"github.com/yandre13/ytextract/internal/utils"
)

// classifyExtractionError maps the collaborator's failure text onto the API
// error taxonomy. The substrings mirror yt-dlp's message wording, which is not
// a stable contract; keep every such assumption inside this one function.
func classifyExtractionError(message string) *utils.APIError {
	switch {
	case strings.Contains(message, "Video unavailable"):
		return utils.NewVideoUnavailableError()
	case strings.Contains(message, "Sign in to confirm your age"):
		return utils.NewAgeRestrictedError()
	case strings.Contains(message, "Private video"):
		return utils.NewPrivateVideoError()
	default:
		return utils.NewExtractionError(message)
	}
}
