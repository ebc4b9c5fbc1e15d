package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
	"github.com/afkcodes/kakeibo/internal/middleware"
)

// reportingHandler handles HTTP requests for derived read-only aggregates.
type reportingHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingSvc: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingSvc)

	reports := rg.Group("/reports")
	{
		reports.GET("/accounts", h.getAccountStats)
		reports.GET("/transactions", h.getTransactionStats)
		reports.GET("/goals", h.getGoalProgress)
	}
}

// getAccountStats godoc
// @Summary Get account statistics
// @Description Sums positive balances into assets and negative balances into liabilities
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.AccountStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute account stats"
// @Security BearerAuth
// @Router /reports/accounts [get]
func (h *reportingHandler) getAccountStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.reportingSvc.GetAccountStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute account stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute account stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getTransactionStats godoc
// @Summary Get transaction statistics
// @Description Aggregates income and expenses for the current calendar month
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.TransactionStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute transaction stats"
// @Security BearerAuth
// @Router /reports/transactions [get]
func (h *reportingHandler) getTransactionStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.reportingSvc.GetTransactionStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute transaction stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute transaction stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getGoalProgress godoc
// @Summary Get goal progress
// @Description Projects progress and monthly pace for all of the user's goals
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.GoalProgress
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute goal progress"
// @Security BearerAuth
// @Router /reports/goals [get]
func (h *reportingHandler) getGoalProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := h.reportingSvc.GetGoalProgress(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute goal progress", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute goal progress"})
		return
	}

	c.JSON(http.StatusOK, progress)
}
