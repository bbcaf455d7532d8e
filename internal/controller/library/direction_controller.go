package library

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/controller"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/service"
)

type DirectionController struct {
	directionService service.DirectionService
}

func NewDirectionController(directionService service.DirectionService) *DirectionController {
	return &DirectionController{directionService: directionService}
}

func (c *DirectionController) RegisterRoutes(rg *gin.RouterGroup) {
	directions := rg.Group("/directions")
	directions.GET("", c.ListDirections)
	directions.POST("", c.CreateDirection)
	directions.GET("/:direction_id", c.GetDirection)
	directions.DELETE("/:direction_id", c.DeleteDirection)
}

// ListDirections godoc
// @Summary List study directions
// @Tags Directions
// @Produce json
// @Success 200 {array} dto.DirectionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /directions [get]
func (c *DirectionController) ListDirections(ctx *gin.Context) {
	directions, err := c.directionService.ListDirections(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "ListDirections", "Failed to retrieve directions", err)
		return
	}
	ctx.JSON(http.StatusOK, directions)
}

// CreateDirection godoc
// @Summary Create a study direction
// @Description Names are unique; a duplicate name is rejected.
// @Tags Directions
// @Accept json
// @Produce json
// @Param direction body dto.DirectionCreateDTO true "Direction name and description"
// @Success 201 {object} dto.DirectionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or duplicate name"
// @Failure 500 {object} dto.ErrorResponse
// @Router /directions [post]
func (c *DirectionController) CreateDirection(ctx *gin.Context) {
	var req dto.DirectionCreateDTO
	if !controller.BindJSON(ctx, "CreateDirection", &req) {
		return
	}
	direction, err := c.directionService.CreateDirection(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "CreateDirection", "Failed to create direction", err)
		return
	}
	ctx.JSON(http.StatusCreated, direction)
}

// GetDirection godoc
// @Summary Get a study direction
// @Tags Directions
// @Produce json
// @Param direction_id path int true "Direction ID"
// @Success 200 {object} dto.DirectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /directions/{direction_id} [get]
func (c *DirectionController) GetDirection(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "direction_id")
	if !ok {
		return
	}
	direction, err := c.directionService.GetDirection(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GetDirection", "Failed to retrieve direction", err)
		return
	}
	ctx.JSON(http.StatusOK, direction)
}

// DeleteDirection godoc
// @Summary Delete a study direction
// @Tags Directions
// @Produce json
// @Param direction_id path int true "Direction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /directions/{direction_id} [delete]
func (c *DirectionController) DeleteDirection(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "direction_id")
	if !ok {
		return
	}
	if err := c.directionService.DeleteDirection(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "DeleteDirection", "Failed to delete direction", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Direction deleted"})
}
