package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"transcripter-backend/internal/logging"
	"transcripter-backend/internal/models"
)

const (
	wordsPerMinute    = 200
	unknownDuration   = "Unknown"
	thumbnailTemplate = "https://img.youtube.com/vi/%s/maxresdefault.jpg"
)

// TranscriptProvider fetches caption data for a video.
type TranscriptProvider interface {
	FetchTranscript(ctx context.Context, videoID string) ([]models.TranscriptEntry, error)
	ListLanguages(ctx context.Context, videoID string) ([]string, error)
}

type TranscriptService struct {
	provider TranscriptProvider
	logger   *slog.Logger
}

func NewTranscriptService(provider TranscriptProvider, logger *slog.Logger) *TranscriptService {
	return &TranscriptService{
		provider: provider,
		logger:   logging.WithComponent(logger, "transcript"),
	}
}

// GetTranscript fetches the transcript for videoID and shapes it into a
// TranscriptResult. Provider failures are always returned as *TranscriptError.
func (s *TranscriptService) GetTranscript(ctx context.Context, videoID string) (*models.TranscriptResult, error) {
	log := logging.WithVideoID(s.logger, videoID)
	log.Info("fetching transcript")

	entries, err := s.fetchEntries(ctx, videoID)
	if err != nil {
		te := classifyProviderError(err)
		log.Warn("transcript fetch failed", "kind", te.Kind.String(), "error", err)
		return nil, te
	}
	log.Info("transcript fetched", "entries", len(entries))

	result := BuildResult(videoID, entries)
	log.Debug("transcript assembled", "chars", len(result.Transcript), "words", result.WordCount)
	return result, nil
}

// ListLanguages returns the caption language codes available for videoID.
// Errors are returned unwrapped so callers can report the provider's message.
func (s *TranscriptService) ListLanguages(ctx context.Context, videoID string) (langs []string, err error) {
	defer recoverProvider(&err)
	return s.provider.ListLanguages(ctx, videoID)
}

func (s *TranscriptService) fetchEntries(ctx context.Context, videoID string) (entries []models.TranscriptEntry, err error) {
	defer recoverProvider(&err)
	return s.provider.FetchTranscript(ctx, videoID)
}

// recoverProvider turns a panic inside a provider call into a fetch error.
// It must be deferred directly.
func recoverProvider(err *error) {
	if r := recover(); r != nil {
		*err = newError(KindFetchError, fmt.Errorf("provider panic: %v", r))
	}
}

// BuildResult derives text, word count, reading time, duration and thumbnail
// from the provider entries. It is pure: identical input yields identical output.
func BuildResult(videoID string, entries []models.TranscriptEntry) *models.TranscriptResult {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Text)
		sb.WriteByte(' ')
	}
	text := strings.TrimSpace(sb.String())
	words := len(strings.Fields(text))

	list := entries
	if list == nil {
		list = []models.TranscriptEntry{}
	}

	return &models.TranscriptResult{
		VideoID:        videoID,
		Transcript:     text,
		TranscriptList: list,
		ReadingTime:    ReadingTime(words),
		Duration:       FormatDuration(entries),
		WordCount:      words,
		ThumbnailURL:   ThumbnailURL(videoID),
	}
}

// ReadingTime estimates minutes to read words at 200 wpm, never less than 1.
func ReadingTime(words int) int {
	return max(1, words/wordsPerMinute)
}

// FormatDuration formats the end of the last entry as m:ss, or "Unknown"
// when there are no entries.
func FormatDuration(entries []models.TranscriptEntry) string {
	if len(entries) == 0 {
		return unknownDuration
	}
	last := entries[len(entries)-1]
	total := int(last.Start + last.Duration)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(thumbnailTemplate, videoID)
}
