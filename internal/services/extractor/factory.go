package extractor

import (
	"github.com/yandre13/ytextract/internal/config"
)

// New creates the extraction backend selected by configuration.
func New(cfg *config.ExtractorConfig) Extractor {
	opts := Options{
		YtdlpPath: cfg.YtdlpPath,
		MaxHeight: cfg.MaxHeight,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}

	if cfg.Backend == "native" {
		return NewNativeExtractor(opts)
	}
	return NewYtdlpExtractor(opts)
}
