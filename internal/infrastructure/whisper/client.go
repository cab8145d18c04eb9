// Package whisper forwards recordings to the transcription service (a
// Whisper-backed Flask API in the reference deployment).
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

const (
	processPath    = "/api/process_audio"
	uploadField    = "audio_file"
	uploadFilename = "audio.webm"
	defaultTimeout = 2 * time.Minute
)

// Client implements ports.AudioProcessor by uploading the recording as
// multipart form data. Transcription of long recordings is slow, so the
// default timeout is generous.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Process(ctx context.Context, audio []byte) (*domain.AudioSummary, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(uploadField, uploadFilename)
	if err != nil {
		return nil, fmt.Errorf("build audio upload: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("build audio upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build audio upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, &body)
	if err != nil {
		return nil, fmt.Errorf("build audio upload: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTranscriberUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrTranscriberUnavailable, resp.StatusCode)
	}

	var summary domain.AudioSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrTranscriberUnavailable, err)
	}
	return &summary, nil
}
