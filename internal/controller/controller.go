// Package controller holds the request helpers shared by the HTTP
// controllers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/service"
	"github.com/rs/zerolog/log"
)

// ParamID reads a numeric path parameter. It writes a 400 response and
// returns false when the value is not a positive integer.
func ParamID(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || v == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(v), true
}

// QueryUint reads an optional numeric query parameter.
func QueryUint(ctx *gin.Context, name string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " in query"})
		return nil, false
	}
	u := uint(v)
	return &u, true
}

// QueryBool reads an optional boolean query parameter.
func QueryBool(ctx *gin.Context, name string) (*bool, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " in query"})
		return nil, false
	}
	return &v, true
}

// QueryInt reads an optional integer query parameter, returning def when
// it is absent.
func QueryInt(ctx *gin.Context, name string, def int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " in query"})
		return 0, false
	}
	return v, true
}

// BindJSON binds the request body, answering 400 on failure.
func BindJSON(ctx *gin.Context, op string, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Msgf("%s: Failed to bind JSON", op)
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the error body for a failed service call. Client
// errors carry their own message; server errors get failMsg with the cause
// in details.
func RespondError(ctx *gin.Context, op, failMsg string, err error) {
	status := StatusFor(err)
	if errors.Is(err, service.ErrAIUnavailable) {
		log.Error().Err(err).Msgf("%s: AI service not configured", op)
		ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
		return
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msgf("%s: Service error", op)
		ctx.JSON(status, dto.ErrorResponse{Message: failMsg, Details: []string{err.Error()}})
		return
	}
	log.Warn().Err(err).Msgf("%s: Request rejected", op)
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// Health godoc
// @Summary Liveness check
// @Tags Ops
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}
