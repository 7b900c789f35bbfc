package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "task-management/pkg/errors"
	"task-management/pkg/response"
)

const (
	ServiceName    = "task-management"
	ServiceVersion = "1.0.0"

	dbPingTimeout = 2 * time.Second
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "NOT_READY", "database unavailable")

type probeResp struct {
	Status      string            `json:"status"`
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Environment string            `json:"environment,omitempty"`
	Checks      map[string]string `json:"checks,omitempty"`
}

func (srv HTTPServer) probe(status string, checks map[string]string) probeResp {
	return probeResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
		Checks:      checks,
	}
}

// healthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy", nil))
}

// readyCheck answers 200 once PostgreSQL responds to a ping.
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Failure 503 {object} response.ErrorResp "NOT_READY"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.pingDB(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck pingDB: %v", err)
		response.Error(c, errNotReady)
		return
	}
	response.OK(c, srv.probe("ready", map[string]string{"postgres": "ok"}))
}

// liveCheck
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive", nil))
}

func (srv HTTPServer) pingDB(ctx context.Context) error {
	sqlDB, err := srv.postgresDB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
