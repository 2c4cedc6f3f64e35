package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	hterrors "github.com/hightemp/youtube-transcript-api-go/errors"
	yt "github.com/kkdai/youtube/v2"
)

// ErrorKind classifies every failure a transcript request can end in.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindNoTranscript
	KindVideoUnavailable
	KindTranscriptsDisabled
	KindFetchError
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNoTranscript:
		return "no transcript available"
	case KindVideoUnavailable:
		return "video unavailable"
	case KindTranscriptsDisabled:
		return "transcripts disabled"
	case KindFetchError:
		return "fetch error"
	default:
		return "internal error"
	}
}

// TranscriptError carries a classified failure and the error that caused it.
type TranscriptError struct {
	Kind ErrorKind
	Err  error
}

func (e *TranscriptError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *TranscriptError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, err error) *TranscriptError {
	return &TranscriptError{Kind: kind, Err: err}
}

// ErrInvalidURL is returned when no recognized YouTube URL shape matches.
var ErrInvalidURL = errors.New("Invalid YouTube URL")

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) ErrorKind {
	var te *TranscriptError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindInternal
}

// StatusFor maps an error to the HTTP status and user-facing detail message.
func StatusFor(err error) (int, string) {
	var te *TranscriptError
	if !errors.As(err, &te) {
		return http.StatusInternalServerError, fmt.Sprintf("Server error: %v", err)
	}

	switch te.Kind {
	case KindInvalidInput:
		if te.Err != nil {
			return http.StatusBadRequest, te.Err.Error()
		}
		return http.StatusBadRequest, ErrInvalidURL.Error()
	case KindNoTranscript:
		return http.StatusBadRequest, "This video has no available transcripts or captions."
	case KindVideoUnavailable:
		return http.StatusBadRequest, "This video is unavailable or private."
	case KindTranscriptsDisabled:
		return http.StatusBadRequest, "Transcripts are disabled for this video."
	case KindFetchError:
		return http.StatusBadRequest, fmt.Sprintf("Error fetching transcript: %s", causeMessage(te))
	default:
		return http.StatusInternalServerError, fmt.Sprintf("Server error: %s", causeMessage(te))
	}
}

func causeMessage(te *TranscriptError) string {
	if te.Err == nil {
		return te.Kind.String()
	}
	return te.Err.Error()
}

// Messages produced by the transcript API client's error constructors.
var (
	msgVideoUnavailable      = hightempMessage(hterrors.NewVideoUnavailable(""))
	msgTranscriptsDisabled   = hightempMessage(hterrors.NewTranscriptsDisabled(""))
	msgNoTranscriptAvailable = hightempMessage(hterrors.NewNoTranscriptAvailable(""))
	msgNoTranscriptFound     = hightempMessage(hterrors.NewNoTranscriptFound("", nil))
	// An empty timedtext document fails XML decoding with io.EOF.
	msgEmptyCaptionDocument = hightempMessage(hterrors.NewYouTubeRequestFailed(io.EOF, ""))
)

func hightempMessage(err error) string {
	var te *hterrors.TranscriptError
	if errors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}

// classifyProviderError turns a transcript provider failure into a
// TranscriptError. Typed errors are matched first: the transcript API
// client's *TranscriptError by its constructor message, then the kkdai
// sentinels. Free-text matching is the last resort.
func classifyProviderError(err error) *TranscriptError {
	var te *TranscriptError
	if errors.As(err, &te) {
		return te
	}

	var hte *hterrors.TranscriptError
	if errors.As(err, &hte) {
		switch {
		case hte.Message == msgVideoUnavailable:
			return newError(KindVideoUnavailable, err)
		case hte.Message == msgTranscriptsDisabled:
			return newError(KindTranscriptsDisabled, err)
		case hte.Message == msgNoTranscriptAvailable,
			hte.Message == msgEmptyCaptionDocument,
			strings.HasPrefix(hte.Message, msgNoTranscriptFound):
			return newError(KindNoTranscript, err)
		default:
			return newError(KindFetchError, err)
		}
	}

	switch {
	case errors.Is(err, yt.ErrTranscriptDisabled):
		return newError(KindTranscriptsDisabled, err)
	case errors.Is(err, yt.ErrVideoPrivate), errors.Is(err, yt.ErrLoginRequired):
		return newError(KindVideoUnavailable, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no element found"),
		strings.Contains(msg, "no transcript"),
		strings.Contains(msg, "no captions"):
		return newError(KindNoTranscript, err)
	case strings.Contains(msg, "video unavailable"),
		strings.Contains(msg, "video is unavailable"),
		strings.Contains(msg, "private video"):
		return newError(KindVideoUnavailable, err)
	case strings.Contains(msg, "transcriptsdisabled"),
		strings.Contains(msg, "transcripts are disabled"),
		strings.Contains(msg, "subtitles are disabled"):
		return newError(KindTranscriptsDisabled, err)
	default:
		return newError(KindFetchError, err)
	}
}

// Cause returns the message of the error underneath a classification, for
// reporting provider failures verbatim.
func Cause(err error) string {
	var te *TranscriptError
	if errors.As(err, &te) {
		return causeMessage(te)
	}
	return err.Error()
}
