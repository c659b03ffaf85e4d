package models

// CandidateFormat is one encoding/quality variant of a video as reported by
// the extraction backend. Optional fields are pointers; nil means the backend
// did not report the value.
type CandidateFormat struct {
	FormatID   string   `json:"format_id"`
	Ext        string   `json:"ext"`
	Resolution *string  `json:"resolution"`
	FPS        *float64 `json:"fps"`
	VideoCodec string   `json:"vcodec"`
	AudioCodec string   `json:"acodec"`
	Height     *int     `json:"-"`
	Filesize   *int64   `json:"filesize"`
	URL        string   `json:"url"`
}

// HasVideo reports whether the format carries a video stream.
func (f *CandidateFormat) HasVideo() bool {
	return f.VideoCodec != "" && f.VideoCodec != "none"
}

// HasAudio reports whether the format carries an audio stream.
func (f *CandidateFormat) HasAudio() bool {
	return f.AudioCodec != "" && f.AudioCodec != "none"
}

// VideoInfo is the full extraction result for one video. It lives for a
// single request and is never persisted.
type VideoInfo struct {
	Title           *string
	DurationSeconds *int
	ThumbnailURL    *string
	Uploader        *string
	ViewCount       *int64
	UploadDate      *string
	Description     *string
	Formats         []CandidateFormat
}

// ExtractRequest is the POST /extract body.
type ExtractRequest struct {
	URL string `json:"url"`
}

// ExtractedResponse is the public projection of a successful extraction.
// Optional fields serialize as null when absent, matching the wire contract.
type ExtractedResponse struct {
	VideoURL    string  `json:"video_url"`
	Title       string  `json:"title"`
	Duration    *int    `json:"duration"`
	Thumbnail   *string `json:"thumbnail"`
	Uploader    *string `json:"uploader"`
	ViewCount   *int64  `json:"view_count"`
	UploadDate  *string `json:"upload_date"`
	Description *string `json:"description"`
	OriginalURL string  `json:"original_url"`
}

// FormatsResponse lists the raw candidate formats for inspection.
type FormatsResponse struct {
	Title   *string           `json:"title"`
	Formats []CandidateFormat `json:"formats"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp float64 `json:"timestamp"`
}
