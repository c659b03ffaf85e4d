// Package video implements the extraction pipeline: URL normalization and
// validation, format selection and the public response projection.
package video

import (
	"context"

	"github.com/yandre13/ytextract/internal/models"
	"github.com/yandre13/ytextract/internal/services/extractor"
	"github.com/yandre13/ytextract/internal/utils"
)

const (
	// maxDescriptionLength bounds the description field in responses.
	maxDescriptionLength = 500

	untitledVideo = "Untitled video"
)

type Service struct {
	extractor extractor.Extractor
}

func NewService(ext extractor.Extractor) *Service {
	return &Service{extractor: ext}
}

// Extract runs the full pipeline for one raw URL and returns the public
// response. All failures are *utils.APIError values.
func (s *Service) Extract(ctx context.Context, rawURL string) (*models.ExtractedResponse, error) {
	normalizedURL := NormalizeURL(rawURL)

	utils.LogInfo(ctx, "Processing URL", utils.Fields{"url": normalizedURL})

	if !IsValidYouTubeURL(normalizedURL) {
		utils.LogWarn(ctx, "Rejected URL", utils.Fields{
			"url":  normalizedURL,
			"kind": utils.ErrorKindInvalidURL,
		})
		return nil, utils.NewInvalidURLError()
	}

	info, err := s.extractor.Extract(ctx, normalizedURL)
	if err != nil {
		logExtractionFailure(ctx, normalizedURL, err)
		return nil, err
	}

	videoURL, err := SelectPlaybackURL(info.Formats)
	if err != nil {
		logExtractionFailure(ctx, normalizedURL, err)
		return nil, err
	}

	response := buildResponse(info, videoURL, normalizedURL)

	utils.LogInfo(ctx, "Extraction successful", utils.Fields{"title": response.Title})

	return response, nil
}

// Formats returns the raw candidate formats without running the selector.
// Any collaborator failure is reported as formats_error; this endpoint exists
// for inspection and does not participate in the extraction error taxonomy.
func (s *Service) Formats(ctx context.Context, rawURL string) (*models.FormatsResponse, error) {
	normalizedURL := NormalizeURL(rawURL)

	if !IsValidYouTubeURL(normalizedURL) {
		return nil, utils.NewInvalidURLError()
	}

	info, err := s.extractor.Extract(ctx, normalizedURL)
	if err != nil {
		logExtractionFailure(ctx, normalizedURL, err)
		if apiErr, ok := err.(*utils.APIError); ok {
			return nil, utils.NewFormatsError(apiErr.Message)
		}
		return nil, utils.NewFormatsError(err.Error())
	}

	formats := info.Formats
	if formats == nil {
		formats = []models.CandidateFormat{}
	}

	return &models.FormatsResponse{
		Title:   info.Title,
		Formats: formats,
	}, nil
}

// buildResponse projects the extraction result onto the public schema. The
// title falls back to a placeholder and the description is cut to its first
// 500 characters; every other optional field passes through unchanged.
func buildResponse(info *models.VideoInfo, videoURL, originalURL string) *models.ExtractedResponse {
	response := &models.ExtractedResponse{
		VideoURL:    videoURL,
		Title:       untitledVideo,
		Duration:    info.DurationSeconds,
		Thumbnail:   info.ThumbnailURL,
		Uploader:    info.Uploader,
		ViewCount:   info.ViewCount,
		UploadDate:  info.UploadDate,
		OriginalURL: originalURL,
	}

	if info.Title != nil {
		response.Title = *info.Title
	}

	if info.Description != nil {
		description := *info.Description
		if runes := []rune(description); len(runes) > maxDescriptionLength {
			description = string(runes[:maxDescriptionLength])
		}
		response.Description = &description
	}

	return response
}

func logExtractionFailure(ctx context.Context, url string, err error) {
	fields := utils.Fields{"url": url}
	if apiErr, ok := err.(*utils.APIError); ok {
		fields["kind"] = apiErr.Kind
	}
	utils.LogError(ctx, "Extraction failed", err, fields)
}
