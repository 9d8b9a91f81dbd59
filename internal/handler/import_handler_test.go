package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/service"
	"github.com/noah-isme/uta-ingest-api/pkg/config"
	"github.com/noah-isme/uta-ingest-api/pkg/response"
)

func newImportTestHandler() *ImportHandler {
	importSvc := service.NewImportService(config.IngestConfig{}, nil, nil, nil)
	templateSvc := service.NewTemplateService(nil, nil)
	return NewImportHandler(importSvc, templateSvc)
}

func postJSON(t *testing.T, w *httptest.ResponseRecorder, payload any) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(w)
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/import/timetable", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestImportHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newImportTestHandler()
	w := httptest.NewRecorder()
	c := postJSON(t, w, dto.ImportRequest{Content: "Department,Semester,Section,Subject,Teachers\nBS-AI,1,A,Networks,Dr. Ada"})

	handler.Import(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Error)
}

func TestImportHandlerStructuralError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newImportTestHandler()
	w := httptest.NewRecorder()
	c := postJSON(t, w, dto.ImportRequest{Content: "Department,Subject"})

	handler.Import(c)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "STRUCTURAL_ERROR", envelope.Error.Code)
}

func TestImportHandlerInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newImportTestHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/import/timetable", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Import(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportHandlerTemplateDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newImportTestHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/import/template", nil)
	c.Request = req

	handler.Template(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), service.TemplateFilename)
	assert.Contains(t, w.Body.String(), "Course Code")
}
