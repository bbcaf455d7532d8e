package library

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/controller"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/service"
	"github.com/rs/zerolog/log"
)

type MaterialController struct {
	materialService service.MaterialService
}

func NewMaterialController(materialService service.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

func (c *MaterialController) RegisterRoutes(rg *gin.RouterGroup) {
	materials := rg.Group("/materials")
	materials.GET("", c.ListMaterials)
	materials.POST("", c.CreateMaterial)
	materials.GET("/:material_id/progress", c.StreamProgress)
	materials.DELETE("/:material_id", c.DeleteMaterial)
}

// ListMaterials godoc
// @Summary List study materials
// @Tags Materials
// @Produce json
// @Param direction_id query int false "Only materials of this direction"
// @Success 200 {array} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /materials [get]
func (c *MaterialController) ListMaterials(ctx *gin.Context) {
	directionID, ok := controller.QueryUint(ctx, "direction_id")
	if !ok {
		return
	}
	materials, err := c.materialService.ListMaterials(ctx.Request.Context(), directionID)
	if err != nil {
		controller.RespondError(ctx, "ListMaterials", "Failed to retrieve materials", err)
		return
	}
	ctx.JSON(http.StatusOK, materials)
}

// CreateMaterial godoc
// @Summary Upload a study material
// @Description Stores the material, extracts key points and generates questions before answering. When the AI step fails the material comes back with status "failed".
// @Tags Materials
// @Accept json
// @Produce json
// @Param material body dto.MaterialCreateDTO true "Material"
// @Success 201 {object} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Direction not found"
// @Failure 500 {object} dto.ErrorResponse "AI service not configured"
// @Router /materials [post]
func (c *MaterialController) CreateMaterial(ctx *gin.Context) {
	var req dto.MaterialCreateDTO
	if !controller.BindJSON(ctx, "CreateMaterial", &req) {
		return
	}
	material, err := c.materialService.CreateMaterial(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "CreateMaterial", "Failed to create material", err)
		return
	}
	ctx.JSON(http.StatusCreated, material)
}

// StreamProgress godoc
// @Summary Process a pending material with progress events
// @Description Server-sent events, one JSON ProgressEvent per message. A material already being processed by another request yields a single "processing" event; any other material that is not pending yields a single "completed" event.
// @Tags Materials
// @Produce text/event-stream
// @Param material_id path int true "Material ID"
// @Success 200 {object} dto.ProgressEvent
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/{material_id}/progress [get]
func (c *MaterialController) StreamProgress(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "material_id")
	if !ok {
		return
	}

	started := false
	emit := func(ev dto.ProgressEvent) {
		if !started {
			ctx.Header("Content-Type", "text/event-stream")
			ctx.Header("Cache-Control", "no-cache")
			ctx.Header("Connection", "keep-alive")
			ctx.Header("X-Accel-Buffering", "no")
			ctx.Status(http.StatusOK)
			started = true
		}
		ctx.SSEvent("message", ev)
		ctx.Writer.Flush()
	}

	if err := c.materialService.StreamProgress(ctx.Request.Context(), id, emit); err != nil {
		if started {
			log.Error().Err(err).Uint("materialID", id).Msg("StreamProgress: Stream aborted")
			return
		}
		controller.RespondError(ctx, "StreamProgress", "Failed to process material", err)
	}
}

// DeleteMaterial godoc
// @Summary Delete a material and its questions
// @Tags Materials
// @Produce json
// @Param material_id path int true "Material ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/{material_id} [delete]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "material_id")
	if !ok {
		return
	}
	if err := c.materialService.DeleteMaterial(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "DeleteMaterial", "Failed to delete material", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Material deleted"})
}
