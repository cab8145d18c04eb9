package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// CodeHandler proxies code execution requests to the sandboxed runner.
// Responses keep the success/error envelope the editor frontend expects.
type CodeHandler struct {
	service ports.CodeService
}

func NewCodeHandler(service ports.CodeService) *CodeHandler {
	return &CodeHandler{service: service}
}

type codeFileRequest struct {
	Name    string `json:"name"`
	Content string `json:"content" validate:"required"`
}

type executeRequest struct {
	Language string            `json:"language" validate:"required"`
	Version  string            `json:"version" validate:"required"`
	Files    []codeFileRequest `json:"files" validate:"required,min=1,dive"`
}

type executeResponse struct {
	Success bool                    `json:"success"`
	Result  *domain.ExecutionResult `json:"result,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// Execute runs a code payload in the sandbox and returns its verdict.
//
// @Summary      Execute code
// @Tags         code
// @Accept       json
// @Produce      json
// @Param        body  body      executeRequest  true  "Code payload"
// @Success      200   {object}  executeResponse
// @Failure      400   {object}  executeResponse
// @Failure      500   {object}  executeResponse
// @Router       /code/execute [post]
func (h *CodeHandler) Execute(c echo.Context) error {
	var req executeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, executeResponse{
			Error: "Invalid request body. 'language', 'version', and 'files' are required.",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, executeResponse{
			Error: "Invalid request body. 'language', 'version', and 'files' are required.",
		})
	}

	files := make([]domain.CodeFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, domain.CodeFile{Name: f.Name, Content: f.Content})
	}

	result, err := h.service.Execute(c.Request().Context(), domain.ExecutionRequest{
		Language: req.Language,
		Version:  req.Version,
		Files:    files,
	})
	if err != nil {
		msg := "Failed to execute the code in the sandbox"
		if errors.Is(err, domain.ErrRunnerRejected) {
			msg = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, executeResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, executeResponse{Success: true, Result: result})
}
