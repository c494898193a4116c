package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/msumanth960/epaper/internal/config"
	"github.com/msumanth960/epaper/internal/draft"
	"github.com/msumanth960/epaper/internal/filter"
	"github.com/msumanth960/epaper/internal/models"
	"github.com/msumanth960/epaper/internal/service"
	"github.com/msumanth960/epaper/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockPortalService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockPortalService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
		Today:   config.DefaultToday,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestListRegions(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Regions(gomock.Any()).Return([]models.Region{
		{Name: "Telangana", Districts: []string{"Hyderabad", "Warangal"}},
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/regions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, []string{"Hyderabad", "Warangal"}, resp[0].Districts)
}

func TestListDistricts_UnknownState(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Districts(gomock.Any(), "Goa").Return([]string{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/regions/Goa/districts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"Goa","districts":[]}`, w.Body.String())
}

func TestGetDashboard_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Dashboard(gomock.Any()).Return(&models.DashboardSummary{
		Today:              "2025-11-24",
		TodayEditions:      []models.Edition{{ID: "ep1"}},
		TodayIncidentCount: 3,
		TotalIncidents:     8,
		TopState:           &models.StateActivity{State: "Telangana", Count: 4},
		LatestIncidents:    []models.Incident{{ID: "inc6"}},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TodayIncidentCount)
	require.NotNil(t, resp.TopState)
	assert.Equal(t, "Telangana", resp.TopState.State)
	assert.Equal(t, 4, resp.TopState.Count)
}

func TestGetDashboard_NoTopState(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Dashboard(gomock.Any()).Return(&models.DashboardSummary{Today: "2025-11-24"}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "top_state")
}

func TestListEditions_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := filter.LibraryCriteria{Date: "2025-11-24", State: "Telangana", Search: "morning"}

	mockService.EXPECT().
		Library(gomock.Any(), expected).
		Return([]models.Edition{{ID: "ep7", EditionName: "Hyderabad Morning Edition"}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/editions?date=2025-11-24&state=Telangana&search=morning", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EditionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Hyderabad Morning Edition", resp.Items[0].EditionName)
}

func TestListEditions_DistrictWithoutStateIgnored(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Library(gomock.Any(), filter.LibraryCriteria{}).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/editions?district=Pune", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"items":[]}`, w.Body.String())
}

func TestListEditions_InvalidDate(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Library(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/editions?date=24-11-2025", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Date")
}

func TestGetFeed_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := filter.FeedCriteria{
		Tab:      filter.TabCitizen,
		State:    "Maharashtra",
		District: "Pune",
		DateFrom: "2025-11-23",
		DateTo:   "2025-11-24",
	}

	mockService.EXPECT().
		Feed(gomock.Any(), expected).
		Return([]models.Incident{{ID: "inc1", ReportType: models.ReportTypeCitizen}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/feed?tab=citizen&state=Maharashtra&district=Pune&dateFrom=2025-11-23&dateTo=2025-11-24", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Citizen", resp.Items[0].ReportType)
}

func TestGetFeed_DefaultTab(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Feed(gomock.Any(), filter.FeedCriteria{Tab: filter.TabAll}).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/feed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFeed_InvalidTab(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Feed(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/feed?tab=breaking", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "oneof")
}

func TestOpenEdition_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	view := &models.ReaderView{
		Edition:     models.Edition{ID: "ep1", PageCount: 12},
		Page:        2,
		Zoom:        120,
		DocumentURL: "/dummy/pune-times.pdf#page=2&zoom=120",
		HasPrev:     true,
		HasNext:     true,
	}

	mockService.EXPECT().OpenEdition(gomock.Any(), "ep1", 2, 120).Return(view, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/editions/ep1/view?page=2&zoom=120", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReaderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, view.DocumentURL, resp.DocumentURL)
	assert.True(t, resp.HasPrev)
}

func TestOpenEdition_DefaultsPassedAsZero(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().OpenEdition(gomock.Any(), "ep1", 0, 0).Return(&models.ReaderView{Page: 1, Zoom: 100}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/editions/ep1/view", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOpenEdition_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: edition ep404: %w", service.ErrEditionNotFound)

	mockService.EXPECT().OpenEdition(gomock.Any(), "ep404", 0, 0).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/editions/ep404/view", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "edition not found")
}

func TestOpenEdition_InvalidPage(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().OpenEdition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/editions/ep1/view?page=two", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenEdition_HugeNumbersSaturate(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		OpenEdition(gomock.Any(), "ep1", math.MaxInt, math.MinInt).
		Return(&models.ReaderView{Page: 12, Zoom: 50}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/editions/ep1/view?page=99999999999999999999&zoom=-99999999999999999999", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseReaderQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    ReaderQuery
		wantPage int
		wantZoom int
		wantErr  bool
	}{
		{name: "empty", query: ReaderQuery{}, wantPage: 0, wantZoom: 0},
		{name: "plain", query: ReaderQuery{Page: "3", Zoom: "150"}, wantPage: 3, wantZoom: 150},
		{name: "overflow", query: ReaderQuery{Page: "99999999999999999999", Zoom: "-99999999999999999999"}, wantPage: math.MaxInt, wantZoom: math.MinInt},
		{name: "not a number", query: ReaderQuery{Page: "two"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, zoom, err := ParseReaderQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantZoom, zoom)
		})
	}
}

func TestSubmitEdition_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEditionRequest{State: "Telangana", District: "Warangal", EditionName: "Warangal Times"}

	mockService.EXPECT().
		SubmitEdition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d draft.EditionDraft) (*models.Edition, error) {
			assert.Equal(t, "Warangal Times", d.EditionName)
			assert.Empty(t, d.Date)
			return &models.Edition{ID: "ep-1", Date: "2025-11-24", EditionName: d.EditionName, PageCount: 12}, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/editions", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp EditionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ep-1", resp.ID)
	assert.Equal(t, 12, resp.PageCount)
}

func TestSubmitEdition_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	verr := &draft.ValidationError{Result: draft.Result{Errors: []draft.FieldError{
		{Field: "edition_name", Tag: "required", Message: "edition_name is required"},
	}}}

	mockService.EXPECT().SubmitEdition(gomock.Any(), gomock.Any()).Return(nil, verr).Times(1)

	w := makeRequest(router, "POST", "/api/v1/editions", jsonBody(t, CreateEditionRequest{}), apiKeyHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "edition_name", resp.Errors[0].Field)
}

func TestSubmitEdition_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitEdition(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/editions", bytes.NewBufferString(`{"state": "Gujarat"`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitEdition_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitEdition(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/editions", jsonBody(t, CreateEditionRequest{}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitEdition_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("service: could not save edition: connection refused")

	mockService.EXPECT().SubmitEdition(gomock.Any(), gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/editions", jsonBody(t, CreateEditionRequest{}), apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRecentUploads(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().RecentUploads(gomock.Any()).Return([]models.Edition{{ID: "ep-2"}, {ID: "ep-1"}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/editions/recent", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []EditionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "ep-2", resp[0].ID)
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := &models.Incident{ID: "inc3", Title: "Local Election Results Announced", Status: models.StatusResolved}

	mockService.EXPECT().GetIncident(gomock.Any(), "inc3").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/inc3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.Title, resp.Title)
	assert.Equal(t, "Resolved", resp.Status)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: incident inc404: %w", service.ErrIncidentNotFound)

	mockService.EXPECT().GetIncident(gomock.Any(), "inc404").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/inc404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestReportIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		Title:       "Tree fall on Tank Bund",
		State:       "Telangana",
		District:    "Hyderabad",
		Category:    "Weather",
		Description: "A large tree fell across two lanes.",
		Confirmed:   true,
	}

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d draft.IncidentDraft) (*models.Incident, error) {
			assert.Equal(t, models.CategoryWeather, d.Category)
			assert.True(t, d.Confirmed)
			return &models.Incident{
				ID:         "inc-1",
				Title:      d.Title,
				Status:     models.StatusReported,
				ReportType: models.ReportTypeCitizen,
			}, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reported", resp.Status)
	assert.Equal(t, "Citizen", resp.ReportType)
}

func TestReportIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	verr := &draft.ValidationError{Result: draft.Result{Errors: []draft.FieldError{
		{Field: "confirmed", Tag: "required", Message: "confirmed is required"},
	}}}

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Return(nil, verr).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, ReportIncidentRequest{Title: "x"}), map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"confirmed"`)
}

func TestSubmittedIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmittedIncidents(gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/submitted", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func newAuthRouter(keys []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	router.Use(APIKeyAuthMiddleware(&config.Config{APIKeys: keys}, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{name: "valid key", keys: []string{"valid-key"}, headers: map[string]string{"X-API-Key": "valid-key"}, wantCode: http.StatusOK},
		{name: "bearer token", keys: []string{"valid-key"}, headers: map[string]string{"Authorization": "Bearer valid-key"}, wantCode: http.StatusOK},
		{name: "missing key", keys: []string{"valid-key"}, headers: map[string]string{}, wantCode: http.StatusUnauthorized, wantBody: "API key required"},
		{name: "invalid key", keys: []string{"valid-key"}, headers: map[string]string{"X-API-Key": "invalid-key"}, wantCode: http.StatusUnauthorized, wantBody: "Invalid API key"},
		{name: "no keys configured", keys: nil, headers: map[string]string{}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(newAuthRouter(tt.keys), "GET", "/test", nil, tt.headers)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
