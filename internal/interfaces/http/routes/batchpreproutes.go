package routes

import (
	"github.com/gin-gonic/gin"

	batchprephandlers "titledesk/internal/interfaces/http/handlers/batchprep"
	"titledesk/internal/interfaces/http/middleware"
)

type BatchPrepRouteConfig struct {
	MappingHandler  *batchprephandlers.MappingHandler
	BatchHandler    *batchprephandlers.BatchHandler
	RoundHandler    *batchprephandlers.RoundHandler
	ShippingHandler *batchprephandlers.ShippingHandler
	CheckHandler    *batchprephandlers.CheckHandler
	ReportHandler   *batchprephandlers.ReportHandler
	CountyHandler   *batchprephandlers.CountyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupBatchPrepRoutes(engine *gin.Engine, config *BatchPrepRouteConfig) {
	api := engine.Group("/api/v1")
	api.Use(config.AuthMiddleware.RequireOperator())
	{
		mappings := api.Group("/mappings")
		{
			mappings.PUT("", config.MappingHandler.SetMapping)
			mappings.DELETE("", config.MappingHandler.DeleteMapping)
		}

		batches := api.Group("/batches")
		{
			batches.POST("", config.BatchHandler.CreateBatches)

			// Specific paths must be registered before /:id.
			batches.GET("/review", config.BatchHandler.ListReview)
			batches.GET("/incomplete", config.BatchHandler.ListIncomplete)
			batches.GET("/sent-to-dmv", config.BatchHandler.ListSentToDmv)
			batches.POST("/sent-to-dmv", config.BatchHandler.MarkSentToDmv)
			batches.POST("/complete", config.BatchHandler.CompleteBatches)

			batches.DELETE("/:id", config.BatchHandler.DeleteBatch)
		}

		api.GET("/rounds", config.RoundHandler.ComputeRounds)

		shipping := api.Group("/shipping")
		{
			shipping.POST("/labels", config.ShippingHandler.GenerateLabels)
			shipping.GET("/tracking/:trackingNumber", config.ShippingHandler.TrackShipment)
		}

		checks := api.Group("/checks")
		{
			checks.POST("/upload", config.CheckHandler.UploadChecks)
			checks.GET("/export", config.CheckHandler.ExportChecks)
		}

		reports := api.Group("/reports")
		{
			reports.GET("", config.ReportHandler.ListHistory)
			reports.GET("/:id/download", config.ReportHandler.DownloadReport)
		}

		counties := api.Group("/counties")
		{
			counties.GET("", config.CountyHandler.ListCounties)
			counties.GET("/:id/rules", config.CountyHandler.ListCountyRules)
		}
	}
}
