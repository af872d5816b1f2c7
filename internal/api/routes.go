package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	api.Use(requestID())
	{
		api.GET("/health", health)
		api.GET("/templates", templatesHandler)
		api.POST("/layout", s.layoutHandler)
		api.POST("/export/jpeg", s.exportJpegHandler)
		api.POST("/export/pdf", s.exportPdfHandler)
		api.GET("/qr", qrHandler)
		api.GET("/ws/preview", s.previewHandler)
	}
}
