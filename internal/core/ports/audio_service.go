package ports

import (
	"context"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

// AudioService turns a base64-encoded recording into a transcription summary.
type AudioService interface {
	Transcribe(ctx context.Context, base64Audio string) (*domain.AudioSummary, error)
}

// AudioProcessor is the upstream transcription backend (multipart upload of
// the decoded recording).
type AudioProcessor interface {
	Process(ctx context.Context, audio []byte) (*domain.AudioSummary, error)
}
