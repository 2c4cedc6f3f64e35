package models

type VideoRequest struct {
	URL string `json:"url"`
}

// TranscriptEntry is one timed caption segment. Start and Duration are seconds.
type TranscriptEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type TranscriptResult struct {
	VideoID        string            `json:"video_id"`
	Transcript     string            `json:"transcript"`
	TranscriptList []TranscriptEntry `json:"transcript_list"`
	ReadingTime    int               `json:"reading_time"` // minutes
	Duration       string            `json:"duration"`     // "m:ss" or "Unknown"
	WordCount      int               `json:"word_count"`
	ThumbnailURL   string            `json:"thumbnail_url"`
}
