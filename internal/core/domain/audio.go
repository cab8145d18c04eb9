package domain

import "errors"

// AudioSummary is the transcription service's response, passed through to
// the client unchanged.
type AudioSummary struct {
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"key_points"`
	TopicsDiscussed []string `json:"topics_discussed"`
	Duration        float64  `json:"duration"`
	Transcript      string   `json:"transcript"`
	ConfidenceScore float64  `json:"confidence_score"`
	SpeakerCount    int      `json:"speaker_count"`
}

var (
	// ErrEmptyAudio is returned when the request carries no audio payload
	// or the payload is not valid base64.
	ErrEmptyAudio = errors.New("no audio provided")
	// ErrTranscriberUnavailable is returned when the transcription service
	// cannot be reached or rejects the upload.
	ErrTranscriberUnavailable = errors.New("transcription service unavailable")
)
