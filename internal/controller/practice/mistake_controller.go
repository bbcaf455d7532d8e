package practice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/controller"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/repository"
	"github.com/lshigami/Studynest/internal/service"
)

type MistakeController struct {
	mistakeService service.MistakeService
}

func NewMistakeController(mistakeService service.MistakeService) *MistakeController {
	return &MistakeController{mistakeService: mistakeService}
}

func (c *MistakeController) RegisterRoutes(rg *gin.RouterGroup) {
	mistakes := rg.Group("/mistakes")
	mistakes.GET("", c.ListMistakes)
	mistakes.GET("/:mistake_id", c.GetMistake)
	mistakes.PATCH("/:mistake_id", c.UpdateMistake)
	mistakes.DELETE("/:mistake_id", c.DeleteMistake)
}

// ListMistakes godoc
// @Summary List the mistake log
// @Tags Mistakes
// @Produce json
// @Param direction_id query int false "Filter by direction"
// @Param mastered query bool false "Filter by mastered flag"
// @Success 200 {array} dto.MistakeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /mistakes [get]
func (c *MistakeController) ListMistakes(ctx *gin.Context) {
	directionID, ok := controller.QueryUint(ctx, "direction_id")
	if !ok {
		return
	}
	mastered, ok := controller.QueryBool(ctx, "mastered")
	if !ok {
		return
	}
	mistakes, err := c.mistakeService.ListMistakes(ctx.Request.Context(), repository.MistakeFilter{DirectionID: directionID, Mastered: mastered})
	if err != nil {
		controller.RespondError(ctx, "ListMistakes", "Failed to retrieve mistakes", err)
		return
	}
	ctx.JSON(http.StatusOK, mistakes)
}

// GetMistake godoc
// @Summary Get a mistake with its question
// @Tags Mistakes
// @Produce json
// @Param mistake_id path int true "Mistake ID"
// @Success 200 {object} dto.MistakeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /mistakes/{mistake_id} [get]
func (c *MistakeController) GetMistake(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "mistake_id")
	if !ok {
		return
	}
	mistake, err := c.mistakeService.GetMistake(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GetMistake", "Failed to retrieve mistake", err)
		return
	}
	ctx.JSON(http.StatusOK, mistake)
}

// UpdateMistake godoc
// @Summary Record a review of a mistake
// @Description Without review_count the counter goes up by one.
// @Tags Mistakes
// @Accept json
// @Produce json
// @Param mistake_id path int true "Mistake ID"
// @Param body body dto.MistakeUpdateDTO true "Mastered flag and/or review count"
// @Success 200 {object} dto.MistakeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /mistakes/{mistake_id} [patch]
func (c *MistakeController) UpdateMistake(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "mistake_id")
	if !ok {
		return
	}
	var req dto.MistakeUpdateDTO
	if !controller.BindJSON(ctx, "UpdateMistake", &req) {
		return
	}
	mistake, err := c.mistakeService.UpdateMistake(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "UpdateMistake", "Failed to update mistake", err)
		return
	}
	ctx.JSON(http.StatusOK, mistake)
}

// DeleteMistake godoc
// @Summary Remove a mistake from the log
// @Tags Mistakes
// @Produce json
// @Param mistake_id path int true "Mistake ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /mistakes/{mistake_id} [delete]
func (c *MistakeController) DeleteMistake(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "mistake_id")
	if !ok {
		return
	}
	if err := c.mistakeService.DeleteMistake(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "DeleteMistake", "Failed to delete mistake", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Mistake deleted"})
}
