package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"photoscript/api/handlers"
	"photoscript/api/middleware"
	"photoscript/app"
	"photoscript/db"
	_ "photoscript/docs"
)

func New(c *app.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/projects", handlers.ListProjectsHandler(c.Projects))
		api.POST("/projects", handlers.CreateProjectHandler(c.Projects))
		api.GET("/projects/:id", handlers.GetProjectHandler(c.Projects))
		api.PUT("/projects/:id", handlers.UpdateProjectHandler(c.Projects))
		api.DELETE("/projects/:id", handlers.DeleteProjectHandler(c.Projects))

		api.POST("/projects/:id/split", handlers.SplitProjectHandler(c.Projects))
		api.POST("/projects/:id/match", handlers.MatchProjectHandler(c.Projects))
		api.POST("/projects/:id/generate", handlers.GenerateProjectHandler(c.Projects))
		api.POST("/projects/:id/textgen", handlers.GenerateTextHandler(c.TextGen))

		api.GET("/projects/:id/segments", handlers.ListSegmentsHandler(c.Segments))
		api.POST("/projects/:id/segments", handlers.InsertSegmentHandler(c.Segments))
		api.POST("/projects/:id/segments/merge", handlers.MergeSegmentsHandler(c.Segments))
		api.POST("/projects/:id/segments/reindex", handlers.ReindexSegmentsHandler(c.Segments))

		api.PUT("/segments/:id/text", handlers.UpdateSegmentTextHandler(c.Segments))
		api.PUT("/segments/:id/keywords", handlers.UpdateSegmentKeywordsHandler(c.Segments))
		api.DELETE("/segments/:id", handlers.DeleteSegmentHandler(c.Segments))
		api.POST("/segments/:id/split", handlers.SplitSegmentHandler(c.Segments))
		api.POST("/segments/:id/move", handlers.MoveSegmentHandler(c.Segments))
		api.POST("/segments/:id/match", handlers.MatchSegmentHandler(c.Projects))

		api.GET("/segments/:id/assets", handlers.ListCandidatesHandler(c.Assets))
		api.GET("/segments/:id/assets/primary", handlers.GetPrimaryHandler(c.Assets))
		api.PUT("/segments/:id/assets/primary", handlers.SetPrimaryHandler(c.Assets))

		api.POST("/projects/:id/qa/jobs", handlers.SubmitQAJobHandler(c.QAJobs))
		api.GET("/projects/:id/qa/jobs", handlers.ListQAJobsHandler(c.QAJobs))
		api.GET("/qa/jobs/:id", handlers.GetQAJobHandler(c.QAJobs))

		api.GET("/projects/:id/qa/versions", handlers.ListQAVersionsHandler(c.QAVersions))
		api.GET("/projects/:id/qa/diff", handlers.DiffQAVersionsHandler(c.QAVersions))
		api.GET("/qa/versions/:id", handlers.GetQAVersionHandler(c.QAVersions))
		api.PUT("/qa/versions/:id", handlers.UpdateQAVersionHandler(c.QAVersions))
		api.DELETE("/qa/versions/:id", handlers.DeleteQAVersionHandler(c.QAVersions))

		api.GET("/logs", handlers.RecentLogsHandler(c.LogSink))
	}

	return r
}
