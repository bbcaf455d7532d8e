package library

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/controller"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/repository"
	"github.com/lshigami/Studynest/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

func (c *QuestionController) RegisterRoutes(rg *gin.RouterGroup) {
	questions := rg.Group("/questions")
	questions.GET("", c.ListQuestions)
	questions.GET("/:question_id", c.GetQuestion)
	questions.PATCH("/:question_id", c.UpdateQuestion)
	questions.PATCH("/:question_id/rate", c.RateQuestion)
	questions.DELETE("/:question_id", c.DeleteQuestion)
}

// ListQuestions godoc
// @Summary List questions
// @Tags Questions
// @Produce json
// @Param material_id query int false "Filter by material"
// @Param direction_id query int false "Filter by direction"
// @Param question_type query string false "single_choice, multi_choice, true_false or short_answer"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	materialID, ok := controller.QueryUint(ctx, "material_id")
	if !ok {
		return
	}
	directionID, ok := controller.QueryUint(ctx, "direction_id")
	if !ok {
		return
	}
	filter := repository.QuestionFilter{
		MaterialID:  materialID,
		DirectionID: directionID,
		Type:        ctx.Query("question_type"),
	}
	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), filter)
	if err != nil {
		controller.RespondError(ctx, "ListQuestions", "Failed to retrieve questions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{question_id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "question_id")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GetQuestion", "Failed to retrieve question", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Edit a question
// @Description Only the fields present in the body change.
// @Tags Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Fields to change"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{question_id} [patch]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if !controller.BindJSON(ctx, "UpdateQuestion", &req) {
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "UpdateQuestion", "Failed to update question", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// RateQuestion godoc
// @Summary Rate a generated question
// @Tags Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param rating body dto.QuestionRateDTO true "good or bad"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{question_id}/rate [patch]
func (c *QuestionController) RateQuestion(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionRateDTO
	if !controller.BindJSON(ctx, "RateQuestion", &req) {
		return
	}
	question, err := c.questionService.RateQuestion(ctx.Request.Context(), id, req.Rating)
	if err != nil {
		controller.RespondError(ctx, "RateQuestion", "Failed to rate question", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "DeleteQuestion", "Failed to delete question", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}
