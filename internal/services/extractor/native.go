package extractor

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/yandre13/ytextract/internal/models"
	"github.com/yandre13/ytextract/internal/utils"
)

// NativeExtractor resolves videos in-process with kkdai/youtube, without an
// external binary. Enabled with EXTRACTOR_BACKEND=native.
type NativeExtractor struct {
	client *youtube.Client
	opts   Options
}

func NewNativeExtractor(opts Options) *NativeExtractor {
	httpClient := &http.Client{
		Timeout:   opts.Timeout,
		Transport: &userAgentTransport{agent: opts.UserAgent, base: http.DefaultTransport},
	}

	return &NativeExtractor{
		client: &youtube.Client{HTTPClient: httpClient},
		opts:   opts,
	}
}

// userAgentTransport attaches the configured client identity to every
// outbound request; the format set YouTube serves depends on it.
type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(req)
}

func (e *NativeExtractor) Extract(ctx context.Context, url string) (*models.VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	video, err := e.client.GetVideoContext(ctx, url)
	if err != nil {
		var playErr *youtube.ErrPlayabiltyStatus
		if errors.As(err, &playErr) {
			return nil, classifyExtractionError(playErr.Reason)
		}
		return nil, classifyExtractionError(err.Error())
	}
	if video == nil {
		return nil, utils.NewExtractionFailedError()
	}

	info := &models.VideoInfo{
		Formats: make([]models.CandidateFormat, 0, len(video.Formats)),
	}

	if video.Title != "" {
		title := video.Title
		info.Title = &title
	}
	if seconds := int(video.Duration.Seconds()); seconds > 0 {
		info.DurationSeconds = &seconds
	}
	if len(video.Thumbnails) > 0 {
		thumbnail := video.Thumbnails[0].URL
		info.ThumbnailURL = &thumbnail
	}
	if video.Author != "" {
		uploader := video.Author
		info.Uploader = &uploader
	}
	if video.Views > 0 {
		views := int64(video.Views)
		info.ViewCount = &views
	}
	if !video.PublishDate.IsZero() {
		uploadDate := video.PublishDate.Format("20060102")
		info.UploadDate = &uploadDate
	}
	if video.Description != "" {
		description := video.Description
		info.Description = &description
	}

	for i := range video.Formats {
		format := &video.Formats[i]

		candidate := formatToCandidate(format)

		// Ciphered formats carry no direct URL until deciphered.
		if candidate.URL == "" {
			streamURL, err := e.client.GetStreamURLContext(ctx, video, format)
			if err != nil {
				utils.LogDebug(ctx, "Skipping undecipherable format", utils.Fields{
					"itag":  format.ItagNo,
					"error": err.Error(),
				})
			} else {
				candidate.URL = streamURL
			}
		}

		info.Formats = append(info.Formats, candidate)
	}

	return info, nil
}

// formatToCandidate maps a kkdai format onto the collaborator-neutral model,
// deriving container and codec sentinels from the MIME type.
func formatToCandidate(format *youtube.Format) models.CandidateFormat {
	candidate := models.CandidateFormat{
		FormatID:   fmt.Sprintf("%d", format.ItagNo),
		VideoCodec: "none",
		AudioCodec: "none",
		URL:        format.URL,
	}

	mediaType, params, err := mime.ParseMediaType(format.MimeType)
	if err == nil {
		if parts := strings.SplitN(mediaType, "/", 2); len(parts) == 2 {
			candidate.Ext = parts[1]

			codecs := splitCodecs(params["codecs"])
			switch {
			case parts[0] == "audio" && len(codecs) > 0:
				candidate.AudioCodec = codecs[0]
			case len(codecs) >= 2:
				candidate.VideoCodec = codecs[0]
				candidate.AudioCodec = codecs[1]
			case len(codecs) == 1:
				candidate.VideoCodec = codecs[0]
			}
		}
	}

	if format.Height > 0 {
		height := format.Height
		candidate.Height = &height
	}
	if format.Width > 0 && format.Height > 0 {
		resolution := fmt.Sprintf("%dx%d", format.Width, format.Height)
		candidate.Resolution = &resolution
	}
	if format.FPS > 0 {
		fps := float64(format.FPS)
		candidate.FPS = &fps
	}
	if format.ContentLength > 0 {
		filesize := format.ContentLength
		candidate.Filesize = &filesize
	}

	return candidate
}

func splitCodecs(codecs string) []string {
	if codecs == "" {
		return nil
	}
	parts := strings.Split(codecs, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
