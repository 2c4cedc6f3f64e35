package models

type TranscriptResponse struct {
	Success bool              `json:"success"`
	Data    *TranscriptResult `json:"data"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// LanguagesResponse reports the caption languages of a video. Error is set
// only when Available is false.
type LanguagesResponse struct {
	Available   bool     `json:"available"`
	Transcripts []string `json:"transcripts,omitempty"`
	Error       string   `json:"error,omitempty"`
	VideoID     string   `json:"video_id"`
}

type ConnectivityResponse struct {
	YouTubeAccessible bool   `json:"youtube_accessible"`
	StatusCode        int    `json:"status_code,omitempty"`
	Error             string `json:"error,omitempty"`
}
