package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Справочник штатов и округов
	regions := api.Group("/regions")
	{
		regions.GET("", h.listRegions)
		regions.GET("/:name/districts", h.listDistricts)
	}

	api.GET("/dashboard", h.getDashboard)

	// Библиотека, просмотр и загрузка выпусков
	editions := api.Group("/editions")
	{
		editions.GET("", h.listEditions)
		editions.GET("/recent", h.recentUploads)
		editions.GET("/:id/view", h.openEdition)
		editions.POST("", auth, h.submitEdition)
	}

	// Лента и сообщения об инцидентах
	api.GET("/feed", h.getFeed)
	incidents := api.Group("/incidents")
	{
		incidents.GET("/submitted", h.submittedIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("", auth, h.reportIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
