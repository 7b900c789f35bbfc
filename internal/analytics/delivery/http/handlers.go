package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-management/internal/middleware"
	pkgErrors "task-management/pkg/errors"
	"task-management/pkg/response"
)

var errGetAnalyticsFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "GET_ANALYTICS_FAILED", "failed to load analytics")

// Report godoc
// @Summary     Task analytics
// @Description Completion rate, category and priority breakdowns, the 7-day trend and suggestions.
// @Tags        Analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=reportResp}
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "GET_ANALYTICS_FAILED"
// @Router      /api/analytics [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	report, err := h.uc.Report(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Report uc.Report: %v", err)
		response.Error(c, errGetAnalyticsFailed)
		return
	}

	response.OK(c, newReportResp(report))
}
