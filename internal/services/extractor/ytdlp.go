package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yandre13/ytextract/internal/models"
	"github.com/yandre13/ytextract/internal/utils"
)

// YtdlpExtractor shells out to the yt-dlp binary and maps its JSON dump into
// the typed VideoInfo model. This is the default backend.
type YtdlpExtractor struct {
	opts Options
}

func NewYtdlpExtractor(opts Options) *YtdlpExtractor {
	return &YtdlpExtractor{opts: opts}
}

// ytdlpVideo matches the subset of yt-dlp's --dump-single-json output this
// service consumes. Fields yt-dlp may omit or null are pointers.
type ytdlpVideo struct {
	Title       *string       `json:"title"`
	Duration    *float64      `json:"duration"`
	Thumbnail   *string       `json:"thumbnail"`
	Uploader    *string       `json:"uploader"`
	ViewCount   *int64        `json:"view_count"`
	UploadDate  *string       `json:"upload_date"`
	Description *string       `json:"description"`
	Formats     []ytdlpFormat `json:"formats"`
}

type ytdlpFormat struct {
	FormatID   string   `json:"format_id"`
	Ext        string   `json:"ext"`
	Resolution *string  `json:"resolution"`
	FPS        *float64 `json:"fps"`
	VCodec     *string  `json:"vcodec"`
	ACodec     *string  `json:"acodec"`
	Height     *int     `json:"height"`
	Filesize   *int64   `json:"filesize"`
	URL        string   `json:"url"`
}

func (e *YtdlpExtractor) Extract(ctx context.Context, url string) (*models.VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	args := []string{
		"--dump-single-json",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"--format", fmt.Sprintf("best[height<=%d]/best", e.opts.MaxHeight),
		"--user-agent", e.opts.UserAgent,
		url,
	}

	cmd := exec.CommandContext(ctx, e.opts.YtdlpPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	utils.LogDebug(ctx, "Running yt-dlp", utils.Fields{"url": url})

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			message := strings.TrimSpace(stderr.String())
			if message == "" {
				message = err.Error()
			}
			return nil, classifyExtractionError(message)
		}
		// yt-dlp could not be started at all (missing binary, etc.)
		utils.LogError(ctx, "Failed to start yt-dlp", err, utils.Fields{"path": e.opts.YtdlpPath})
		return nil, utils.NewInternalError()
	}

	info, err := parseYtdlpOutput(stdout.Bytes())
	if err != nil {
		utils.LogError(ctx, "Unusable yt-dlp output", err, utils.Fields{"url": url})
		return nil, utils.NewExtractionFailedError()
	}

	return info, nil
}

// parseYtdlpOutput converts the raw JSON dump into the typed model. Absent
// codec fields become the "none" sentinel so downstream checks never see an
// empty string.
func parseYtdlpOutput(raw []byte) (*models.VideoInfo, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("empty output")
	}

	var video ytdlpVideo
	if err := json.Unmarshal(raw, &video); err != nil {
		return nil, fmt.Errorf("decode yt-dlp json: %w", err)
	}

	info := &models.VideoInfo{
		Title:        video.Title,
		ThumbnailURL: video.Thumbnail,
		Uploader:     video.Uploader,
		ViewCount:    video.ViewCount,
		UploadDate:   video.UploadDate,
		Description:  emptyToNil(video.Description),
		Formats:      make([]models.CandidateFormat, 0, len(video.Formats)),
	}

	if video.Duration != nil {
		seconds := int(*video.Duration)
		info.DurationSeconds = &seconds
	}

	for _, f := range video.Formats {
		info.Formats = append(info.Formats, models.CandidateFormat{
			FormatID:   f.FormatID,
			Ext:        f.Ext,
			Resolution: f.Resolution,
			FPS:        f.FPS,
			VideoCodec: codecOrNone(f.VCodec),
			AudioCodec: codecOrNone(f.ACodec),
			Height:     f.Height,
			Filesize:   f.Filesize,
			URL:        f.URL,
		})
	}

	return info, nil
}

// yt-dlp emits "" for videos without a description; the response should
// carry null there, matching the other backend.
func emptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func codecOrNone(codec *string) string {
	if codec == nil || *codec == "" {
		return "none"
	}
	return *codec
}
