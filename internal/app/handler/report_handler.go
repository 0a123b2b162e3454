package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetMonthlyReport aggregates the ledger per calendar month
// @Summary Monthly income and expense report
// @Description Sums pemasukan and pengeluaran per month for the given year. Defaults to the current year.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, e.g. 2026"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/monthly [get]
func (h *APIHandler) GetMonthlyReport(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			h.errorResponse(c, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}

	totals, err := h.Repository.GetMonthlyTotals(year)
	if err != nil {
		logHandlerError("GetMonthlyReport", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to build monthly report")
		return
	}

	h.successResponse(c, http.StatusOK, "", gin.H{
		"year":   year,
		"months": totals,
	})
}
