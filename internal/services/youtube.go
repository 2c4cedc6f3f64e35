package services

import (
	"context"
	"errors"
	"html"
	"sort"

	ytapi "github.com/hightemp/youtube-transcript-api-go/api"

	"transcripter-backend/internal/models"
)

// YouTubeService is the TranscriptProvider backed by YouTube's timedtext
// captions. Fetching and language listing go through the same client so both
// endpoints agree about a video.
type YouTubeService struct {
	transcriptAPI *ytapi.YouTubeTranscriptApi
	languages     []string
}

func NewYouTubeService(languages []string) *YouTubeService {
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	return &YouTubeService{
		transcriptAPI: ytapi.NewYouTubeTranscriptApi(),
		languages:     languages,
	}
}

// FetchTranscript fetches the caption entries for videoID in the first
// available preferred language.
func (s *YouTubeService) FetchTranscript(ctx context.Context, videoID string) ([]models.TranscriptEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	transcript, err := s.transcriptAPI.GetTranscript(videoID, s.languages)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	return toEntries(transcript.Entries), nil
}

// ListLanguages returns the language codes of the video's manually created
// transcripts followed by its generated ones.
func (s *YouTubeService) ListLanguages(ctx context.Context, videoID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list, err := s.transcriptAPI.ListTranscripts(videoID)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	return transcriptLanguages(list)
}

// toEntries maps provider entries to models. Timedtext caption text is
// HTML-escaped inside the XML, so it is unescaped once more here.
func toEntries(in []ytapi.TranscriptEntry) []models.TranscriptEntry {
	out := make([]models.TranscriptEntry, 0, len(in))
	for _, e := range in {
		out = append(out, models.TranscriptEntry{
			Text:     html.UnescapeString(e.Text),
			Start:    e.Start,
			Duration: e.Duration,
		})
	}
	return out
}

func transcriptLanguages(list *ytapi.TranscriptList) ([]string, error) {
	if list == nil {
		return captionLanguages(nil)
	}
	return captionLanguages(append(sortedKeys(list.ManuallyCreatedTranscripts), sortedKeys(list.GeneratedTranscripts)...))
}

func sortedKeys(m map[string]*ytapi.Transcript) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var errNoCaptionTracks = errors.New("no caption tracks")

// captionLanguages de-duplicates codes, keeping order. An empty result means
// the uploader disabled captions.
func captionLanguages(codes []string) ([]string, error) {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, newError(KindTranscriptsDisabled, errNoCaptionTracks)
	}
	return out, nil
}
