package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agensi-backend/internal/app/ds"
	"agensi-backend/internal/app/dto"
	"agensi-backend/internal/app/finance"
)

// financeToResponse recomputes the splits from TotalPaymentCust. The stored
// columns are kept for SQL-side reporting but never served directly, so a
// row written under an older rate still reads back consistent.
func financeToResponse(f ds.FranchiseFinance) dto.FranchiseFinanceResponse {
	split := finance.HitungSplit(f.TotalPaymentCust)
	return dto.FranchiseFinanceResponse{
		ID:               f.ID,
		FranchiseID:      f.FranchiseID,
		FranchiseNama:    f.Franchise.Nama,
		Tanggal:          f.Tanggal,
		TotalPaymentCust: f.TotalPaymentCust,
		FeeMentor:        split.FeeMentor,
		KomisiMitra:      split.KomisiMitra,
		KeuntunganBersih: split.KeuntunganBersih,
		Keterangan:       f.Keterangan,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

// GetFranchiseFinances lists finance records
// @Summary List franchise finance records
// @Tags FranchiseFinances
// @Produce json
// @Security BearerAuth
// @Param franchise_id query int false "Filter by franchise"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/franchise-finances [get]
func (h *APIHandler) GetFranchiseFinances(c *gin.Context) {
	var franchiseID uint
	if raw := c.Query("franchise_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "invalid franchise_id")
			return
		}
		franchiseID = uint(parsed)
	}

	items, err := h.Repository.GetFranchiseFinances(franchiseID)
	if err != nil {
		logHandlerError("GetFranchiseFinances", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load finance records")
		return
	}

	resp := dto.FranchiseFinanceListResponse{Items: make([]dto.FranchiseFinanceResponse, len(items)), Total: len(items)}
	for i, f := range items {
		resp.Items[i] = financeToResponse(f)
	}
	h.successResponse(c, http.StatusOK, "", resp)
}

// GetFranchiseFinance returns one finance record
// @Summary Get franchise finance record
// @Tags FranchiseFinances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/franchise-finances/{id} [get]
func (h *APIHandler) GetFranchiseFinance(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetFranchiseFinanceByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "finance record not found")
		return
	}
	h.successResponse(c, http.StatusOK, "", financeToResponse(*item))
}

// CreateFranchiseFinance records a customer payment and its splits
// @Summary Create franchise finance record
// @Tags FranchiseFinances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFranchiseFinanceRequest true "Payment data"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/franchise-finances [post]
func (h *APIHandler) CreateFranchiseFinance(c *gin.Context) {
	var req dto.CreateFranchiseFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	tanggal, err := parseTanggal(req.Tanggal)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetFranchiseByID(req.FranchiseID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "franchise not found")
		return
	}

	split := finance.HitungSplit(req.TotalPaymentCust)
	item := ds.FranchiseFinance{
		FranchiseID:      req.FranchiseID,
		Tanggal:          tanggal,
		TotalPaymentCust: req.TotalPaymentCust,
		FeeMentor:        split.FeeMentor,
		KomisiMitra:      split.KomisiMitra,
		KeuntunganBersih: split.KeuntunganBersih,
		Keterangan:       req.Keterangan,
	}
	if err := h.Repository.CreateFranchiseFinance(&item); err != nil {
		logHandlerError("CreateFranchiseFinance", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create finance record")
		return
	}

	created, err := h.Repository.GetFranchiseFinanceByID(item.ID)
	if err != nil {
		logHandlerError("CreateFranchiseFinance", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load created record")
		return
	}
	h.successResponse(c, http.StatusCreated, "finance record created", financeToResponse(*created))
}

// UpdateFranchiseFinance updates a finance record, recomputing the splits
// @Summary Update franchise finance record
// @Tags FranchiseFinances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.UpdateFranchiseFinanceRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/franchise-finances/{id} [put]
func (h *APIHandler) UpdateFranchiseFinance(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateFranchiseFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetFranchiseFinanceByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "finance record not found")
		return
	}

	if req.Tanggal != "" {
		tanggal, err := parseTanggal(req.Tanggal)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		item.Tanggal = tanggal
	}
	if req.TotalPaymentCust != nil {
		item.TotalPaymentCust = *req.TotalPaymentCust
	}
	if req.Keterangan != nil {
		item.Keterangan = *req.Keterangan
	}

	split := finance.HitungSplit(item.TotalPaymentCust)
	item.FeeMentor = split.FeeMentor
	item.KomisiMitra = split.KomisiMitra
	item.KeuntunganBersih = split.KeuntunganBersih

	if err := h.Repository.UpdateFranchiseFinance(item); err != nil {
		logHandlerError("UpdateFranchiseFinance", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update finance record")
		return
	}
	h.successResponse(c, http.StatusOK, "finance record updated", financeToResponse(*item))
}

// DeleteFranchiseFinance removes a finance record
// @Summary Delete franchise finance record
// @Tags FranchiseFinances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/franchise-finances/{id} [delete]
func (h *APIHandler) DeleteFranchiseFinance(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetFranchiseFinanceByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "finance record not found")
		return
	}

	if err := h.Repository.DeleteFranchiseFinance(id); err != nil {
		logHandlerError("DeleteFranchiseFinance", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete finance record")
		return
	}
	h.successResponse(c, http.StatusOK, "finance record deleted", nil)
}
