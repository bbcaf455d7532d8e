package practice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/controller"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/repository"
	"github.com/lshigami/Studynest/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService       service.ExamService
	submissionService service.ExamSubmissionService
}

func NewExamController(examService service.ExamService, submissionService service.ExamSubmissionService) *ExamController {
	return &ExamController{examService: examService, submissionService: submissionService}
}

func (c *ExamController) RegisterRoutes(rg *gin.RouterGroup) {
	exams := rg.Group("/exams")
	exams.GET("", c.ListExams)
	exams.POST("", c.CreateExam)
	exams.GET("/:exam_id", c.GetExam)
	exams.POST("/:exam_id/submit", c.SubmitExam)
	exams.GET("/:exam_id/result", c.GetExamResult)
}

// ListExams godoc
// @Summary List exams, newest first
// @Tags Exams
// @Produce json
// @Param direction_id query int false "Filter by direction"
// @Param status query string false "in_progress or completed"
// @Success 200 {array} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	directionID, ok := controller.QueryUint(ctx, "direction_id")
	if !ok {
		return
	}
	filter := repository.ExamFilter{DirectionID: directionID, Status: ctx.Query("status")}
	exams, err := c.examService.ListExams(ctx.Request.Context(), filter)
	if err != nil {
		controller.RespondError(ctx, "ListExams", "Failed to retrieve exams", err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// CreateExam godoc
// @Summary Start an exam
// @Description Draws question_count random questions (default 10) from the direction's materials.
// @Tags Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam settings"
// @Success 201 {object} dto.ExamDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or no questions in the direction"
// @Failure 404 {object} dto.ErrorResponse "Direction not found"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if !controller.BindJSON(ctx, "CreateExam", &req) {
		return
	}
	exam, err := c.examService.CreateExam(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "CreateExam", "Failed to create exam", err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// GetExam godoc
// @Summary Get an exam with its questions
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{exam_id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetExam(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GetExam", "Failed to retrieve exam", err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// SubmitExam godoc
// @Summary Submit answers and grade the exam
// @Description Objective questions are graded locally and short answers by the AI grader. An exam can be submitted once. An empty answers list is rejected with 400 and leaves the exam in progress rather than completing it with score 0.
// @Tags Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.ExamSubmitDTO true "Answers"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body, empty submission or exam already submitted"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{exam_id}/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamSubmitDTO
	if !controller.BindJSON(ctx, "SubmitExam", &req) {
		return
	}

	log.Info().Uint("examID", id).Int("answerCount", len(req.Answers)).Msg("Received exam submission")
	result, err := c.submissionService.SubmitExam(ctx.Request.Context(), id, req.Answers)
	if err != nil {
		controller.RespondError(ctx, "SubmitExam", "Failed to submit exam", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetExamResult godoc
// @Summary Get the graded result of a completed exam
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 400 {object} dto.ErrorResponse "Exam not completed yet"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{exam_id}/result [get]
func (c *ExamController) GetExamResult(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "exam_id")
	if !ok {
		return
	}
	result, err := c.examService.GetExamResult(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GetExamResult", "Failed to retrieve exam result", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
