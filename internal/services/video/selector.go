package video

import (
	"github.com/yandre13/ytextract/internal/models"
	"github.com/yandre13/ytextract/internal/utils"
)

// maxPlayableHeight caps the resolution the selection policy will pick.
// Combined mp4 streams at or below this height play on virtually every
// client without adaptive-stream support.
const maxPlayableHeight = 720

// SelectPlaybackURL picks one playable URL from the candidate formats using
// a deterministic two-phase policy.
//
// Phase 1 takes the first format, in the collaborator's order, that is a
// combined mp4 (video and audio in one stream) with a known height of at
// most 720. Phase 2 runs when phase 1 yielded no URL, including the case
// where the phase 1 winner had an empty URL, and picks the format maximizing
// (effectiveHeight, mp4 bonus); heights that are unknown or above the cap
// count as zero. The scan replaces the champion only on a strictly greater
// key, so ties keep the first maximal element.
func SelectPlaybackURL(formats []models.CandidateFormat) (string, error) {
	playbackURL := ""

	for i := range formats {
		f := &formats[i]
		if f.Ext == "mp4" && f.HasVideo() && f.HasAudio() &&
			f.Height != nil && *f.Height <= maxPlayableHeight {
			playbackURL = f.URL
			break
		}
	}

	if playbackURL == "" && len(formats) > 0 {
		playbackURL = selectFallback(formats)
	}

	if playbackURL == "" {
		return "", utils.NewNoVideoURLError()
	}

	return playbackURL, nil
}

func selectFallback(formats []models.CandidateFormat) string {
	best := &formats[0]
	bestHeight, bestBonus := selectionKey(best)

	for i := 1; i < len(formats); i++ {
		f := &formats[i]
		height, bonus := selectionKey(f)
		if height > bestHeight || (height == bestHeight && bonus > bestBonus) {
			best = f
			bestHeight, bestBonus = height, bonus
		}
	}

	return best.URL
}

// selectionKey returns the lexicographic ranking pair for the fallback scan.
func selectionKey(f *models.CandidateFormat) (effectiveHeight, mp4Bonus int) {
	if f.Height != nil && *f.Height <= maxPlayableHeight {
		effectiveHeight = *f.Height
	}
	if f.Ext == "mp4" {
		mp4Bonus = 1
	}
	return effectiveHeight, mp4Bonus
}
