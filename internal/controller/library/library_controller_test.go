package library

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/service"
)

type stubMaterialService struct {
	service.MaterialService
	events []dto.ProgressEvent
	err    error
}

func (s *stubMaterialService) StreamProgress(_ context.Context, id uint, emit service.ProgressFunc) error {
	if s.err != nil {
		return s.err
	}
	for _, ev := range s.events {
		ev.MaterialID = id
		emit(ev)
	}
	return nil
}

func (s *stubMaterialService) CreateMaterial(context.Context, dto.MaterialCreateDTO) (*dto.MaterialResponse, error) {
	return nil, s.err
}

func TestStreamProgressWritesEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewMaterialController(&stubMaterialService{events: []dto.ProgressEvent{
		{Step: "extracting", Progress: 10},
		{Step: "completed", Progress: 100},
	}}).RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/materials/7/progress", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("content type %q", ct)
	}
	body := w.Body.String()
	if strings.Count(body, "data:") != 2 {
		t.Errorf("expected two events, got %q", body)
	}
	if !strings.Contains(body, `"step":"completed"`) || !strings.Contains(body, `"material_id":7`) {
		t.Errorf("unexpected stream %q", body)
	}
}

func TestMaterialErrorsMapToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		err    error
		want   int
	}{
		{"stream missing material", http.MethodGet, "/api/v1/materials/9/progress", "", service.ErrMaterialNotFound, http.StatusNotFound},
		{"no AI key", http.MethodPost, "/api/v1/materials", `{"direction_id":1,"title":"t","content":"c"}`, service.ErrAIUnavailable, http.StatusInternalServerError},
		{"missing title", http.MethodPost, "/api/v1/materials", `{"direction_id":1,"content":"c"}`, nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		r := gin.New()
		NewMaterialController(&stubMaterialService{err: tc.err}).RegisterRoutes(r.Group("/api/v1"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s: status %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}

type stubParseService struct {
	service.ParseService
	title       string
	directionID *uint
	upload      service.FileUpload
	err         error
}

func (s *stubParseService) ParseFile(_ context.Context, title string, directionID *uint, file service.FileUpload) (*dto.ParseTaskResponse, error) {
	s.title, s.directionID, s.upload = title, directionID, file
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ParseTaskResponse{ID: 1, Title: title, SourceType: "file", SourceContent: file.Filename, Status: "completed"}, nil
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fw.Write(content)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestParseFileReadsMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubParseService{}
	r := gin.New()
	NewParseController(stub).RegisterRoutes(r.Group("/api/v1"))

	body, ct := multipartBody(t, map[string]string{"title": "notes", "direction_id": "3"}, "notes.md", []byte("# heading"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/file", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if stub.title != "notes" || stub.directionID == nil || *stub.directionID != 3 {
		t.Errorf("form fields not passed: title=%q direction=%v", stub.title, stub.directionID)
	}
	if stub.upload.Filename != "notes.md" || string(stub.upload.Data) != "# heading" {
		t.Errorf("upload not passed: %+v", stub.upload)
	}
	var task dto.ParseTaskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil || task.SourceContent != "notes.md" {
		t.Errorf("unexpected response %s", w.Body.String())
	}
}

func TestParseFileRejections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name     string
		fields   map[string]string
		filename string
		err      error
		want     int
	}{
		{"no file", map[string]string{"title": "t"}, "", nil, http.StatusBadRequest},
		{"bad direction", map[string]string{"title": "t", "direction_id": "x"}, "a.txt", nil, http.StatusBadRequest},
		{"unsupported type", map[string]string{"title": "t"}, "a.exe", service.ErrUnsupportedFileType, http.StatusBadRequest},
		{"too large", map[string]string{"title": "t"}, "a.txt", service.ErrFileTooLarge, http.StatusBadRequest},
		{"unknown direction", map[string]string{"title": "t", "direction_id": "8"}, "a.txt", service.ErrDirectionNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		r := gin.New()
		NewParseController(&stubParseService{err: tc.err}).RegisterRoutes(r.Group("/api/v1"))
		body, ct := multipartBody(t, tc.fields, tc.filename, []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse/file", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s: status %d, want %d (%s)", tc.name, w.Code, tc.want, w.Body.String())
		}
	}
}
