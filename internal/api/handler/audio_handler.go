package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// AudioHandler accepts base64-encoded recordings and returns the
// transcription summary produced by the upstream service.
type AudioHandler struct {
	service ports.AudioService
}

func NewAudioHandler(service ports.AudioService) *AudioHandler {
	return &AudioHandler{service: service}
}

type uploadAudioRequest struct {
	Audio string `json:"audio"`
}

type uploadAudioResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Summary *domain.AudioSummary `json:"summary,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// Upload transcribes an uploaded recording.
//
// @Summary      Upload and transcribe audio
// @Tags         audio
// @Accept       json
// @Produce      json
// @Param        body  body      uploadAudioRequest  true  "Base64-encoded recording"
// @Success      200   {object}  uploadAudioResponse
// @Failure      400   {object}  uploadAudioResponse
// @Failure      500   {object}  uploadAudioResponse
// @Router       /audio/upload-audio [post]
func (h *AudioHandler) Upload(c echo.Context) error {
	var req uploadAudioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, uploadAudioResponse{Error: "invalid payload"})
	}

	summary, err := h.service.Transcribe(c.Request().Context(), req.Audio)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyAudio) {
			return c.JSON(http.StatusBadRequest, uploadAudioResponse{Error: "No audio provided in the request."})
		}
		return c.JSON(http.StatusInternalServerError, uploadAudioResponse{Error: "Error processing the audio request."})
	}

	return c.JSON(http.StatusOK, uploadAudioResponse{
		Success: true,
		Message: "Audio processed successfully.",
		Summary: summary,
	})
}
