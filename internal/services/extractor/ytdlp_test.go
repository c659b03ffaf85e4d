package extractor

import (
	"testing"
)

const sampleDump = `{
	"title": "Sample video",
	"duration": 213.1,
	"thumbnail": "https://i.ytimg.com/vi/abc/hq720.jpg",
	"uploader": "Sample channel",
	"view_count": 1234567,
	"upload_date": "20240115",
	"description": "A sample description",
	"formats": [
		{
			"format_id": "sb0",
			"ext": "mhtml",
			"resolution": "48x27",
			"vcodec": "none",
			"acodec": "none"
		},
		{
			"format_id": "251",
			"ext": "webm",
			"resolution": "audio only",
			"vcodec": "none",
			"acodec": "opus",
			"filesize": 3401234,
			"url": "https://cdn/audio"
		},
		{
			"format_id": "18",
			"ext": "mp4",
			"resolution": "640x360",
			"fps": 30,
			"vcodec": "avc1.42001E",
			"acodec": "mp4a.40.2",
			"height": 360,
			"url": "https://cdn/mp4360"
		},
		{
			"format_id": "303",
			"ext": "webm",
			"resolution": "1920x1080",
			"fps": 60,
			"vcodec": "vp9",
			"height": 1080,
			"url": "https://cdn/webm1080"
		}
	]
}`

func TestParseYtdlpOutput(t *testing.T) {
	info, err := parseYtdlpOutput([]byte(sampleDump))
	if err != nil {
		t.Fatalf("parseYtdlpOutput() error = %v, want none", err)
	}

	if info.Title == nil || *info.Title != "Sample video" {
		t.Errorf("Title = %v, want %q", info.Title, "Sample video")
	}
	if info.DurationSeconds == nil || *info.DurationSeconds != 213 {
		t.Errorf("DurationSeconds = %v, want 213", info.DurationSeconds)
	}
	if info.ViewCount == nil || *info.ViewCount != 1234567 {
		t.Errorf("ViewCount = %v, want 1234567", info.ViewCount)
	}
	if len(info.Formats) != 4 {
		t.Fatalf("len(Formats) = %d, want 4", len(info.Formats))
	}

	combined := info.Formats[2]
	if combined.FormatID != "18" || !combined.HasVideo() || !combined.HasAudio() {
		t.Errorf("format 18 mapped incorrectly: %+v", combined)
	}
	if combined.Height == nil || *combined.Height != 360 {
		t.Errorf("format 18 height = %v, want 360", combined.Height)
	}

	// acodec absent in the dump must become the "none" sentinel
	videoOnly := info.Formats[3]
	if videoOnly.AudioCodec != "none" {
		t.Errorf("format 303 acodec = %q, want %q", videoOnly.AudioCodec, "none")
	}
	if videoOnly.HasAudio() {
		t.Error("format 303 must not report audio")
	}

	storyboard := info.Formats[0]
	if storyboard.HasVideo() || storyboard.HasAudio() || storyboard.URL != "" {
		t.Errorf("storyboard format mapped incorrectly: %+v", storyboard)
	}
}

func TestParseYtdlpOutputUnusable(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"empty output", ""},
		{"whitespace only", "\n  \n"},
		{"invalid json", "{not json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseYtdlpOutput([]byte(tc.raw)); err == nil {
				t.Error("parseYtdlpOutput() expected error, got none")
			}
		})
	}
}

func TestParseYtdlpOutputEmptyDescription(t *testing.T) {
	info, err := parseYtdlpOutput([]byte(`{"title": "Sample video", "description": "", "formats": []}`))
	if err != nil {
		t.Fatalf("parseYtdlpOutput() error = %v, want none", err)
	}
	if info.Description != nil {
		t.Errorf("Description = %q, want nil", *info.Description)
	}
}

func TestParseYtdlpOutputMinimal(t *testing.T) {
	info, err := parseYtdlpOutput([]byte(`{"title": null, "formats": []}`))
	if err != nil {
		t.Fatalf("parseYtdlpOutput() error = %v, want none", err)
	}
	if info.Title != nil {
		t.Errorf("Title = %v, want nil", info.Title)
	}
	if info.Description != nil {
		t.Errorf("Description = %v, want nil", info.Description)
	}
	if len(info.Formats) != 0 {
		t.Errorf("len(Formats) = %d, want 0", len(info.Formats))
	}
}
