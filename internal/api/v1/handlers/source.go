package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"speechcut/internal/api/errors"
	"speechcut/internal/api/middleware"
	"speechcut/internal/api/v1/dto"
	"speechcut/internal/api/v1/services"
	"speechcut/internal/app/transcribe"
)

// SourceHandler receives uploaded media and answers with the transcript.
type SourceHandler struct {
	service services.EditService
}

// NewSourceHandler creates a new source handler
func NewSourceHandler(service services.EditService) *SourceHandler {
	return &SourceHandler{
		service: service,
	}
}

// Put handles PUT /source
//
// Multipart form fields: key (session key), isVideo, useBigModel, lang,
// file (the media bytes). Responds with the ordered word list.
func (h *SourceHandler) Put(c *gin.Context) {
	key := c.PostForm("key")
	if key == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Missing session key"))
		return
	}

	lang := c.PostForm("lang")
	if lang == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Missing language"))
		return
	}

	isVideo := c.PostForm("isVideo") == "true"
	useBigModel := c.PostForm("useBigModel") == "true"

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Unreadable upload"))
		return
	}

	sel := transcribe.ModelSelection{
		Lang:        lang,
		UseBigModel: useBigModel,
	}

	transcript, err := h.service.IngestAndTranscribe(c.Request.Context(), key, raw, isVideo, sel)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceResponse(transcript))
}

// Get handles GET /source/:key
//
// Returns the transcript cached for the session, letting a client rejoin a
// session without re-uploading. The cache is process-scoped, so after a
// restart the session must be sourced again.
func (h *SourceHandler) Get(c *gin.Context) {
	key := c.Param("key")

	transcript, ok := h.service.Transcript(key)
	if !ok {
		middleware.HandleError(c, &errors.APIError{
			Kind:    errors.KindNotFound,
			Message: "no transcript for session; upload a source first",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceResponse(transcript))
}
