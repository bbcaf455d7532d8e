package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/service"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrExamNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", service.ErrTaskNotFound), http.StatusNotFound},
		{service.ErrExamAlreadySubmitted, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", service.ErrUnsupportedFileType, ".exe"), http.StatusBadRequest},
		{service.ErrAIUnavailable, http.StatusInternalServerError},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, tc := range []struct {
		raw  string
		ok   bool
		want uint
	}{
		{"12", true, 12},
		{"0", false, 0},
		{"abc", false, 0},
		{"-3", false, 0},
	} {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "exam_id", Value: tc.raw}}
		got, ok := ParamID(ctx, "exam_id")
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParamID(%q) = %d, %v", tc.raw, got, ok)
		}
		if !ok && w.Code != http.StatusBadRequest {
			t.Errorf("ParamID(%q) wrote status %d", tc.raw, w.Code)
		}
	}
}
