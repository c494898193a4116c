package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/msumanth960/epaper/internal/config"
	"github.com/msumanth960/epaper/internal/draft"
	"github.com/msumanth960/epaper/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	portalService service.PortalService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(portalService service.PortalService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		portalService: portalService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary List regions
// @Description Get all states with their districts in display order
// @Tags Regions
// @Produce json
// @Success 200 {array} RegionResponse
// @Router /regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToRegionResponses(h.portalService.Regions(c.Request.Context())))
}

// @Summary List districts of a state
// @Description Get districts of the given state. Unknown state yields an empty list.
// @Tags Regions
// @Produce json
// @Param name path string true "State name"
// @Success 200 {object} DistrictsResponse
// @Router /regions/{name}/districts [get]
func (h *Handler) listDistricts(c *gin.Context) {
	state := c.Param("name")
	c.JSON(http.StatusOK, DistrictsResponse{
		State:     state,
		Districts: h.portalService.Districts(c.Request.Context(), state),
	})
}

// @Summary Get dashboard
// @Description Get today's editions, incident counters, the most active state and the latest incidents
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	summary, err := h.portalService.Dashboard(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build dashboard in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(summary))
}

// @Summary Browse the edition library
// @Description Filter editions by date, state, district and a case-insensitive name search
// @Tags Editions
// @Produce json
// @Param date query string false "Edition date (YYYY-MM-DD)"
// @Param state query string false "State"
// @Param district query string false "District, ignored without state"
// @Param search query string false "Edition name substring"
// @Success 200 {object} EditionListResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /editions [get]
func (h *Handler) listEditions(c *gin.Context) {
	var query LibraryQuery
	log := h.logger.WithField("method", "listEditions")

	if !h.bindQuery(c, log, &query) {
		return
	}

	editions, err := h.portalService.Library(c.Request.Context(), LibraryQueryToCriteria(query))
	if err != nil {
		log.WithError(err).Error("Failed to list editions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, EditionListResponse{Count: len(editions), Items: ModelsToEditionResponses(editions)})
}

// @Summary Open an edition in the reader
// @Description Get the reader state of an edition. Page and zoom are clamped to their valid ranges.
// @Tags Editions
// @Produce json
// @Param id path string true "Edition ID"
// @Param page query int false "Page number" default(1)
// @Param zoom query int false "Zoom percent" default(100)
// @Success 200 {object} ReaderResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "Edition not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /editions/{id}/view [get]
func (h *Handler) openEdition(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "openEdition").WithField("id", id)

	var query ReaderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	page, zoom, err := ParseReaderQuery(query)
	if err != nil {
		log.WithError(err).Warn("Invalid page or zoom")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	view, err := h.portalService.OpenEdition(c.Request.Context(), id, page, zoom)
	if err != nil {
		h.respondError(c, log, err, "Failed to open edition in service")
		return
	}
	c.JSON(http.StatusOK, ModelToReaderResponse(view))
}

// @Summary Upload an edition
// @Description Submit an edition upload form. Requires API key when keys are configured.
// @Tags Editions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param edition body CreateEditionRequest true "Edition upload form"
// @Success 201 {object} EditionResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} ValidationErrorResponse "Form validation failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /editions [post]
func (h *Handler) submitEdition(c *gin.Context) {
	var input CreateEditionRequest
	log := h.logger.WithField("method", "submitEdition")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	edition, err := h.portalService.SubmitEdition(c.Request.Context(), DTOToEditionDraft(input))
	if err != nil {
		h.respondError(c, log, err, "Failed to submit edition in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToEditionResponse(edition))
}

// @Summary Recent uploads
// @Description Get the most recent uploaded editions, newest first
// @Tags Editions
// @Produce json
// @Success 200 {array} EditionResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /editions/recent [get]
func (h *Handler) recentUploads(c *gin.Context) {
	log := h.logger.WithField("method", "recentUploads")

	editions, err := h.portalService.RecentUploads(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list recent uploads from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToEditionResponses(editions))
}

// @Summary Incident feed
// @Description Filter incidents by report type tab, location and an inclusive date range
// @Tags Incidents
// @Produce json
// @Param tab query string false "all, official or citizen" default(all)
// @Param state query string false "State"
// @Param district query string false "District, ignored without state"
// @Param dateFrom query string false "Range start (YYYY-MM-DD)"
// @Param dateTo query string false "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feed [get]
func (h *Handler) getFeed(c *gin.Context) {
	var query FeedQuery
	log := h.logger.WithField("method", "getFeed")

	if !h.bindQuery(c, log, &query) {
		return
	}

	incidents, err := h.portalService.Feed(c.Request.Context(), FeedQueryToCriteria(query))
	if err != nil {
		log.WithError(err).Error("Failed to build feed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, IncidentListResponse{Count: len(incidents), Items: ModelsToIncidentResponses(incidents)})
}

// @Summary Get incident by ID
// @Description Get a single catalog incident by its ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.portalService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "Failed to get incident from service")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Report an incident
// @Description Submit a citizen incident report. Requires API key when keys are configured.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report form"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} ValidationErrorResponse "Form validation failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	incident, err := h.portalService.ReportIncident(c.Request.Context(), DTOToIncidentDraft(input))
	if err != nil {
		h.respondError(c, log, err, "Failed to report incident in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Submitted incidents
// @Description Get all incidents reported in this session, newest first
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/submitted [get]
func (h *Handler) submittedIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "submittedIncidents")

	incidents, err := h.portalService.SubmittedIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list submitted incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindQuery разбирает и проверяет query-параметры, при ошибке сам отвечает 400
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, query any) bool {
	if err := c.ShouldBindQuery(query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError сопоставляет ошибку сервиса с HTTP-статусом
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	var verr *draft.ValidationError
	switch {
	case errors.As(err, &verr):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusUnprocessableEntity, ResultToValidationResponse(verr.Result))
	case errors.Is(err, service.ErrEditionNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "edition not found"})
	case errors.Is(err, service.ErrIncidentNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
