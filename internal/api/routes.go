package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health check
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Draft editing
		v1.GET("/draft", handler.GetDraft)
		v1.PUT("/draft", handler.SaveDraft)
		v1.POST("/draft/rows", handler.AddDraftRow)
		v1.POST("/draft/import", handler.ImportDraft)
		v1.POST("/summary", handler.Summarize)

		// Finalized semesters
		v1.POST("/semesters", handler.Finalize)
		v1.GET("/semesters", handler.ListSemesters)
		v1.GET("/semesters/:id/courses", handler.SemesterCourses)
		v1.POST("/semesters/:id/reopen", handler.Reopen)

		// Cumulative views
		v1.GET("/overall", handler.Overall)
		v1.GET("/transcript", handler.Transcript)
	}
}
