package library

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/controller"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/service"
	"github.com/rs/zerolog/log"
)

type ParseController struct {
	parseService service.ParseService
}

func NewParseController(parseService service.ParseService) *ParseController {
	return &ParseController{parseService: parseService}
}

func (c *ParseController) RegisterRoutes(rg *gin.RouterGroup) {
	parse := rg.Group("/parse")
	parse.POST("/text", c.ParseText)
	parse.POST("/file", c.ParseFile)
	parse.POST("/url", c.ParseURL)

	tasks := parse.Group("/tasks")
	tasks.GET("", c.ListTasks)
	tasks.GET("/:task_id", c.GetTask)
	tasks.PATCH("/:task_id", c.UpdateTask)
	tasks.DELETE("/:task_id", c.DeleteTask)
	tasks.POST("/:task_id/generate-questions", c.GenerateQuestions)
}

// ParseText godoc
// @Summary Extract knowledge from pasted text
// @Description Runs synchronously. Extraction failures come back as a task with status "failed".
// @Tags Parsing
// @Accept json
// @Produce json
// @Param body body dto.ParseTextDTO true "Title and text"
// @Success 200 {object} dto.ParseTaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /parse/text [post]
func (c *ParseController) ParseText(ctx *gin.Context) {
	var req dto.ParseTextDTO
	if !controller.BindJSON(ctx, "ParseText", &req) {
		return
	}
	task, err := c.parseService.ParseText(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "ParseText", "Failed to parse text", err)
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// ParseFile godoc
// @Summary Extract knowledge from an uploaded document
// @Description Accepts .pdf, .docx, .md and .txt up to the configured size.
// @Tags Parsing
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Task title"
// @Param direction_id formData int false "Direction to file the task under"
// @Param file formData file true "Document"
// @Success 200 {object} dto.ParseTaskResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file, unsupported type or too large"
// @Router /parse/file [post]
func (c *ParseController) ParseFile(ctx *gin.Context) {
	title := ctx.PostForm("title")
	var directionID *uint
	if raw := ctx.PostForm("direction_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid direction_id format"})
			return
		}
		id := uint(v)
		directionID = &id
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		log.Warn().Err(err).Msg("ParseFile: Missing file")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File is required", Details: []string{err.Error()}})
		return
	}
	f, err := header.Open()
	if err != nil {
		controller.RespondError(ctx, "ParseFile", "Failed to read upload", err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		controller.RespondError(ctx, "ParseFile", "Failed to read upload", err)
		return
	}

	upload := service.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	task, err := c.parseService.ParseFile(ctx.Request.Context(), title, directionID, upload)
	if err != nil {
		controller.RespondError(ctx, "ParseFile", "Failed to parse file", err)
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// ParseURL godoc
// @Summary Extract knowledge from a web page
// @Tags Parsing
// @Accept json
// @Produce json
// @Param body body dto.ParseURLDTO true "Title and URL"
// @Success 200 {object} dto.ParseTaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /parse/url [post]
func (c *ParseController) ParseURL(ctx *gin.Context) {
	var req dto.ParseURLDTO
	if !controller.BindJSON(ctx, "ParseURL", &req) {
		return
	}
	task, err := c.parseService.ParseURL(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "ParseURL", "Failed to parse URL", err)
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// ListTasks godoc
// @Summary List parse tasks, newest first
// @Tags Parsing
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size, at most 100" default(20)
// @Param direction_id query int false "Filter by direction"
// @Success 200 {array} dto.TaskListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /parse/tasks [get]
func (c *ParseController) ListTasks(ctx *gin.Context) {
	skip, ok := controller.QueryInt(ctx, "skip", 0)
	if !ok {
		return
	}
	limit, ok := controller.QueryInt(ctx, "limit", 20)
	if !ok {
		return
	}
	directionID, ok := controller.QueryUint(ctx, "direction_id")
	if !ok {
		return
	}
	tasks, err := c.parseService.ListTasks(ctx.Request.Context(), skip, limit, directionID)
	if err != nil {
		controller.RespondError(ctx, "ListTasks", "Failed to retrieve parse tasks", err)
		return
	}
	ctx.JSON(http.StatusOK, tasks)
}

// GetTask godoc
// @Summary Get a parse task with its knowledge points and best practices
// @Tags Parsing
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {object} dto.ParseTaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /parse/tasks/{task_id} [get]
func (c *ParseController) GetTask(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "task_id")
	if !ok {
		return
	}
	task, err := c.parseService.GetTask(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GetTask", "Failed to retrieve parse task", err)
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// UpdateTask godoc
// @Summary Move a parse task to another direction
// @Tags Parsing
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Param body body dto.ParseTaskUpdateDTO true "New direction, null to detach"
// @Success 200 {object} dto.ParseTaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /parse/tasks/{task_id} [patch]
func (c *ParseController) UpdateTask(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "task_id")
	if !ok {
		return
	}
	var req dto.ParseTaskUpdateDTO
	if !controller.BindJSON(ctx, "UpdateTask", &req) {
		return
	}
	task, err := c.parseService.UpdateTaskDirection(ctx.Request.Context(), id, req.DirectionID)
	if err != nil {
		controller.RespondError(ctx, "UpdateTask", "Failed to update parse task", err)
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a parse task
// @Tags Parsing
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /parse/tasks/{task_id} [delete]
func (c *ParseController) DeleteTask(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "task_id")
	if !ok {
		return
	}
	if err := c.parseService.DeleteTask(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "DeleteTask", "Failed to delete parse task", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Parse task deleted"})
}

// GenerateQuestions godoc
// @Summary Turn a completed parse task into a material with questions
// @Tags Parsing
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {object} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse "Task not completed, no text or no direction"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parse/tasks/{task_id}/generate-questions [post]
func (c *ParseController) GenerateQuestions(ctx *gin.Context) {
	id, ok := controller.ParamID(ctx, "task_id")
	if !ok {
		return
	}
	material, err := c.parseService.GenerateQuestions(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GenerateQuestions", "Failed to generate questions", err)
		return
	}
	ctx.JSON(http.StatusOK, material)
}
