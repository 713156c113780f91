package handlers

import (
	"github.com/gin-gonic/gin"

	"speechcut/internal/api/middleware"
	"speechcut/internal/api/v1/dto"
	"speechcut/internal/api/v1/services"
)

// GenerateHandler renders the chosen words back into a media file.
type GenerateHandler struct {
	service services.EditService
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(service services.EditService) *GenerateHandler {
	return &GenerateHandler{
		service: service,
	}
}

// Put handles PUT /generate
//
// Takes the session key plus the chosen words in playback order and streams
// back the rendered artifact: WAV for audio, MP4 for video. Content type and
// length come from the produced file.
func (h *GenerateHandler) Put(c *gin.Context) {
	var req dto.GenerateRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	spans, err := req.Spans()
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	outputPath, err := h.service.Render(c.Request.Context(), req.SessionKey, spans, req.OutputKind())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	// http.ServeFile via c.File sets Content-Type from the extension and
	// an accurate Content-Length from the file on disk.
	c.File(outputPath)
}
