package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/playgroundlabs/playground-api/internal/api/metrics"
	"github.com/playgroundlabs/playground-api/internal/core/domain"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// AudioService decodes a base64-encoded recording and hands it to the
// transcription backend.
type AudioService struct {
	processor ports.AudioProcessor
}

func NewAudioService(processor ports.AudioProcessor) *AudioService {
	return &AudioService{processor: processor}
}

func (s *AudioService) Transcribe(ctx context.Context, base64Audio string) (*domain.AudioSummary, error) {
	payload := strings.TrimSpace(base64Audio)
	// Browsers record via FileReader.readAsDataURL, which prefixes the
	// encoding with "data:audio/webm;base64,".
	if strings.HasPrefix(payload, "data:") {
		if i := strings.IndexByte(payload, ','); i >= 0 {
			payload = payload[i+1:]
		}
	}
	if payload == "" {
		return nil, domain.ErrEmptyAudio
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return nil, domain.ErrEmptyAudio
	}

	summary, err := s.processor.Process(ctx, raw)
	if err != nil {
		metrics.TranscriptionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.TranscriptionsTotal.WithLabelValues("ok").Inc()
	return summary, nil
}
