package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// mapHandlers installs the shared middleware chain, the system endpoints and
// every domain under /api/v1.
func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	srv.gin.Use(gin.Recovery(), srv.mw.RequestLogger())

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if err := srv.setupIntentDomain(ctx, srv.gin.Group("/api/v1")); err != nil {
		return err
	}

	srv.l.Infof(ctx, "httpserver: %d routes registered (environment=%s, gin mode=%s)", len(srv.gin.Routes()), srv.environment, srv.mode)
	return nil
}
