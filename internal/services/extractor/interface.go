// Package extractor is the boundary to the external video-extraction
// collaborator. Everything the service assumes about that collaborator (the
// format ceiling, the user agent it presents, the wording of its failure
// messages) lives in this package so it can change without touching the
// selection or response logic.
package extractor

import (
	"context"
	"time"

	"github.com/yandre13/ytextract/internal/models"
)

// Extractor resolves a normalized video URL into metadata and a list of
// candidate formats. Failures are returned as *utils.APIError values already
// mapped to the public error taxonomy.
type Extractor interface {
	Extract(ctx context.Context, url string) (*models.VideoInfo, error)
}

// Options is the immutable set of extraction options. It is built once from
// configuration and passed by value; backends never mutate it.
type Options struct {
	YtdlpPath string
	MaxHeight int
	UserAgent string
	Timeout   time.Duration
}
