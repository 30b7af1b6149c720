package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-intent/internal/intent"
	pkgErrors "task-intent/pkg/errors"
	"task-intent/pkg/response"
)

const (
	ServiceName    = "task-intent"
	ServiceVersion = "1.0.0"
)

// readySample must come back from the parser with a due date and a priority.
const readySample = "check parser readiness tomorrow p3"

type statusResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

type readyResp struct {
	statusResp
	Timezone      string `json:"timezone"`
	SampleDueDate string `json:"sample_due_date"`
}

func (srv HTTPServer) status(s string) statusResp {
	return statusResp{
		Status:  s,
		Service: ServiceName,
		Version: ServiceVersion,
		Uptime:  time.Since(srv.startedAt).Truncate(time.Second).String(),
	}
}

// healthCheck reports that the process is serving requests.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck parses a fixed sample through the intent use case and reports
// the zone relative dates resolve in. It answers 503 when the pipeline does
// not produce the expected fields.
// @Summary Readiness Check
// @Description Check that the parser resolves dates and priorities
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Parser is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	out, err := srv.intentUC.Parse(ctx, intent.ParseInput{Text: readySample})
	if err != nil || out.Intent.DueDate == nil || out.Intent.Priority == "" {
		srv.l.Errorf(ctx, "httpserver.readyCheck: parse %q: err=%v intent=%+v", readySample, err, out.Intent)
		response.Error(c, pkgErrors.ErrServiceUnavailable, nil)
		return
	}

	due := *out.Intent.DueDate
	response.OK(c, readyResp{
		statusResp:    srv.status("ready"),
		Timezone:      due.Location().String(),
		SampleDueDate: due.Format(response.DateFormat),
	})
}

// liveCheck answers as long as the process is up.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
