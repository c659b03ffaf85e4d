package video

import (
	"testing"

	"github.com/yandre13/ytextract/internal/models"
	"github.com/yandre13/ytextract/internal/utils"
)

func fmtWithHeight(ext, vcodec, acodec string, height int, url string) models.CandidateFormat {
	return models.CandidateFormat{
		Ext:        ext,
		VideoCodec: vcodec,
		AudioCodec: acodec,
		Height:     &height,
		URL:        url,
	}
}

func TestSelectPlaybackURL(t *testing.T) {
	testCases := []struct {
		name    string
		formats []models.CandidateFormat
		wantURL string
	}{
		{
			name: "combined mp4 wins over earlier webm",
			formats: []models.CandidateFormat{
				fmtWithHeight("webm", "vp9", "opus", 480, "https://cdn/webm480"),
				fmtWithHeight("mp4", "h264", "aac", 360, "https://cdn/mp4360"),
			},
			wantURL: "https://cdn/mp4360",
		},
		{
			name: "first combined mp4 wins, not the best one",
			formats: []models.CandidateFormat{
				fmtWithHeight("mp4", "h264", "aac", 360, "https://cdn/mp4360"),
				fmtWithHeight("mp4", "h264", "aac", 720, "https://cdn/mp4720"),
			},
			wantURL: "https://cdn/mp4360",
		},
		{
			name: "heights above the cap count as zero in fallback",
			formats: []models.CandidateFormat{
				fmtWithHeight("webm", "vp9", "opus", 1080, "https://cdn/webm1080"),
				fmtWithHeight("webm", "vp9", "opus", 240, "https://cdn/webm240"),
			},
			wantURL: "https://cdn/webm240",
		},
		{
			name: "mp4 bonus breaks equal effective heights",
			formats: []models.CandidateFormat{
				fmtWithHeight("webm", "vp9", "opus", 480, "https://cdn/webm480"),
				fmtWithHeight("mp4", "h264", "none", 480, "https://cdn/mp4video480"),
			},
			wantURL: "https://cdn/mp4video480",
		},
		{
			name: "ties keep the first maximal format",
			formats: []models.CandidateFormat{
				fmtWithHeight("webm", "vp9", "opus", 480, "https://cdn/first"),
				fmtWithHeight("webm", "vp9", "opus", 480, "https://cdn/second"),
			},
			wantURL: "https://cdn/first",
		},
		{
			name: "video-only mp4 fails phase 1 but wins fallback",
			formats: []models.CandidateFormat{
				fmtWithHeight("mp4", "h264", "none", 720, "https://cdn/video-only"),
				fmtWithHeight("m4a", "none", "mp4a.40.2", 0, "https://cdn/audio-only"),
			},
			wantURL: "https://cdn/video-only",
		},
		{
			name: "unknown height excludes a format from phase 1",
			formats: []models.CandidateFormat{
				{Ext: "mp4", VideoCodec: "h264", AudioCodec: "aac", URL: "https://cdn/no-height"},
				fmtWithHeight("mp4", "h264", "aac", 360, "https://cdn/mp4360"),
			},
			wantURL: "https://cdn/mp4360",
		},
		{
			name: "phase 1 hit with empty URL falls through to fallback",
			formats: []models.CandidateFormat{
				fmtWithHeight("mp4", "h264", "aac", 360, ""),
				fmtWithHeight("webm", "vp9", "opus", 480, "https://cdn/webm480"),
			},
			wantURL: "https://cdn/webm480",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url, err := SelectPlaybackURL(tc.formats)
			if err != nil {
				t.Fatalf("SelectPlaybackURL() error = %v, want none", err)
			}
			if url != tc.wantURL {
				t.Errorf("SelectPlaybackURL() = %q, want %q", url, tc.wantURL)
			}
		})
	}
}

func TestSelectPlaybackURLNoPlayableFormat(t *testing.T) {
	testCases := []struct {
		name    string
		formats []models.CandidateFormat
	}{
		{
			name:    "empty format list",
			formats: nil,
		},
		{
			name: "every candidate lacks a URL",
			formats: []models.CandidateFormat{
				fmtWithHeight("webm", "vp9", "opus", 480, ""),
				fmtWithHeight("mp4", "h264", "none", 1080, ""),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SelectPlaybackURL(tc.formats)
			if err == nil {
				t.Fatal("SelectPlaybackURL() expected error, got none")
			}
			apiErr, ok := err.(*utils.APIError)
			if !ok {
				t.Fatalf("SelectPlaybackURL() error type = %T, want *utils.APIError", err)
			}
			if apiErr.Kind != utils.ErrorKindNoVideoURL {
				t.Errorf("SelectPlaybackURL() error kind = %s, want %s", apiErr.Kind, utils.ErrorKindNoVideoURL)
			}
		})
	}
}
