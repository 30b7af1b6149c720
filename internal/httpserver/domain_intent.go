package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "task-intent/internal/intent/delivery/http"
)

// setupIntentDomain registers /api/v1/intents/* and /api/v1/suggestions/*.
func (srv HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := intentHTTP.New(srv.l, srv.intentUC)
	intentHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
