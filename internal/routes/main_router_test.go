package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lab-system/internal/memstore"
	"lab-system/pkg/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type RouterTestSuite struct {
	suite.Suite
	Echo *echo.Echo
}

func (s *RouterTestSuite) SetupTest() {
	e := echo.New()
	e.Validator = validation.New()
	InitRouter(e, memstore.NewSequence(), zap.NewNop())
	s.Echo = e
}

func (s *RouterTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var envelope struct {
		Status  bool                   `json:"status"`
		Body    map[string]interface{} `json:"body"`
		Message string                 `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Body
}

func (s *RouterTestSuite) TestToolLifecycle() {
	rec := s.request(http.MethodPost, "/api/tools", map[string]interface{}{
		"code":              "T-001",
		"name":              "Balance",
		"lastCalibration":   "2024-01-01",
		"nextCalibration":   "2024-07-01",
		"calibrationResult": "ผ่าน",
	})
	s.Equal(http.StatusCreated, rec.Code)
	created := s.decodeBody(rec)
	id := uint64(created["id"].(float64))

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/tools/%d", id), nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPatch, fmt.Sprintf("/api/tools/%d", id), map[string]interface{}{"notes": "room 2"})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("room 2", s.decodeBody(rec)["notes"])

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/tools/%d/calibration-history", id), nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/tools/%d", id), nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/tools/%d", id), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestToolDuplicateCodeConflict() {
	payload := map[string]interface{}{"code": "T-001", "name": "Balance"}
	s.Equal(http.StatusCreated, s.request(http.MethodPost, "/api/tools", payload).Code)
	s.Equal(http.StatusConflict, s.request(http.MethodPost, "/api/tools", payload).Code)
}

func (s *RouterTestSuite) TestToolValidation() {
	rec := s.request(http.MethodPost, "/api/tools", map[string]interface{}{"name": "no code"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/tools", map[string]interface{}{
		"code": "T-002", "name": "Balance", "lastCalibration": "01/06/2024",
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodGet, "/api/tools/abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestQaSampleTransitionGuard() {
	rec := s.request(http.MethodPost, "/api/qa-samples", map[string]interface{}{
		"customerName": "บริษัท เคมีเกษตร จำกัด",
		"receivedDate": "2024-03-01",
		"samples": []map[string]interface{}{
			{"sampleNo": "S-01", "names": []string{"Glyphosate 48%"}},
		},
	})
	s.Equal(http.StatusCreated, rec.Code)
	created := s.decodeBody(rec)
	s.Equal("received", created["status"])
	id := uint64(created["id"].(float64))

	rec = s.request(http.MethodPatch, fmt.Sprintf("/api/qa-samples/%d", id), map[string]interface{}{"status": "delivered"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPatch, fmt.Sprintf("/api/qa-samples/%d", id), map[string]interface{}{"status": "testing"})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("testing", s.decodeBody(rec)["status"])

	rec = s.request(http.MethodPatch, fmt.Sprintf("/api/qa-samples/%d", id), map[string]interface{}{"status": "not-a-status"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestTaskApproveSubtasksRoute() {
	rec := s.request(http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":    "เตรียมตัวอย่าง",
		"subtasks": []map[string]interface{}{{"title": "ชั่งสาร"}},
	})
	s.Equal(http.StatusCreated, rec.Code)
	id := uint64(s.decodeBody(rec)["id"].(float64))

	rec = s.request(http.MethodPost, fmt.Sprintf("/api/tasks/%d/approve-subtasks", id), map[string]interface{}{
		"indexes":    []int{0},
		"approvedBy": "QA Lead",
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPost, fmt.Sprintf("/api/tasks/%d/approve-subtasks", id), map[string]interface{}{
		"indexes":    []int{5},
		"approvedBy": "QA Lead",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestChemicalCategoryFilter() {
	s.Equal(http.StatusCreated, s.request(http.MethodPost, "/api/chemicals", map[string]interface{}{
		"code": "C-1", "name": "Acetone", "category": "solvent",
	}).Code)
	s.Equal(http.StatusCreated, s.request(http.MethodPost, "/api/chemicals", map[string]interface{}{
		"code": "C-2", "name": "NaCl", "category": "salt",
	}).Code)

	rec := s.request(http.MethodGet, "/api/chemicals?category=solvent", nil)
	s.Equal(http.StatusOK, rec.Code)

	var envelope struct {
		Body []map[string]interface{} `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Len(envelope.Body, 1)
	s.Equal("Acetone", envelope.Body[0]["name"])
}

func (s *RouterTestSuite) TestDashboardStats() {
	rec := s.request(http.MethodGet, "/api/dashboard/stats", nil)
	s.Equal(http.StatusOK, rec.Code)
	body := s.decodeBody(rec)
	s.Contains(body, "expiredChemicals")
	s.Contains(body, "openQaSamples")
}

func (s *RouterTestSuite) TestCalibrationReportFormats() {
	s.Equal(http.StatusCreated, s.request(http.MethodPost, "/api/tools", map[string]interface{}{
		"code": "T-001", "name": "Balance", "nextCalibration": "2030-01-01",
	}).Code)

	rec := s.request(http.MethodGet, "/api/reports/calibration", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/reports/calibration?format=xlsx", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get(echo.HeaderContentType))
	s.Contains(rec.Header().Get("Content-Disposition"), ".xlsx")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
