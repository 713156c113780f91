package routes

import (
	"github.com/gin-gonic/gin"

	"speechcut/internal/api/v1/handlers"
	"speechcut/internal/api/v1/services"
)

// RegisterRoutes registers the editing pipeline routes. Paths match the
// editor client's contract: PUT /source uploads media and returns words,
// PUT /generate renders the selection.
func RegisterRoutes(router *gin.RouterGroup, editService services.EditService) {
	sourceHandler := handlers.NewSourceHandler(editService)
	generateHandler := handlers.NewGenerateHandler(editService)

	router.PUT("/source", sourceHandler.Put)
	router.GET("/source/:key", sourceHandler.Get)
	router.PUT("/generate", generateHandler.Put)
}
