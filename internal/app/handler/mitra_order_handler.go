package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agensi-backend/internal/app/ds"
	"agensi-backend/internal/app/dto"
	"agensi-backend/internal/app/finance"
)

// mitraOrderToResponse serves the stored derived fields as-is. Unlike
// franchise finance records, orders are not recomputed on read.
func mitraOrderToResponse(o ds.MitraOrder) dto.MitraOrderResponse {
	resp := dto.MitraOrderResponse{
		ID:              o.ID,
		NamaCustomer:    o.NamaCustomer,
		Layanan:         o.Layanan,
		WorkerID:        o.WorkerID,
		TotalDp:         o.TotalDp,
		TotalPembayaran: o.TotalPembayaran,
		Kekurangan:      o.Kekurangan,
		FeeFreelance:    o.FeeFreelance,
		Status:          o.Status,
		Tanggal:         o.Tanggal,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Worker != nil {
		resp.WorkerNama = o.Worker.Nama
	}
	return resp
}

// GetMitraOrders lists freelance orders
// @Summary List mitra orders
// @Tags MitraOrders
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search by customer or service"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *APIHandler) GetMitraOrders(c *gin.Context) {
	items, err := h.Repository.GetMitraOrders(c.Query("query"))
	if err != nil {
		logHandlerError("GetMitraOrders", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load orders")
		return
	}

	resp := dto.MitraOrderListResponse{Items: make([]dto.MitraOrderResponse, len(items)), Total: len(items)}
	for i, o := range items {
		resp.Items[i] = mitraOrderToResponse(o)
	}
	h.successResponse(c, http.StatusOK, "", resp)
}

// GetMitraOrder returns one freelance order
// @Summary Get mitra order
// @Tags MitraOrders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *APIHandler) GetMitraOrder(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetMitraOrderByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "order not found")
		return
	}
	h.successResponse(c, http.StatusOK, "", mitraOrderToResponse(*item))
}

// CreateMitraOrder records a freelance order with its derived amounts
// @Summary Create mitra order
// @Tags MitraOrders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMitraOrderRequest true "Order data"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders [post]
func (h *APIHandler) CreateMitraOrder(c *gin.Context) {
	var req dto.CreateMitraOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	tanggal, err := parseTanggal(req.Tanggal)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.WorkerID != nil {
		if _, err := h.Repository.GetWorkerByID(*req.WorkerID); err != nil {
			h.errorResponse(c, http.StatusBadRequest, "worker not found")
			return
		}
	}

	kekurangan, feeFreelance := finance.HitungOrder(req.TotalDp, req.TotalPembayaran)
	item := ds.MitraOrder{
		NamaCustomer:    req.NamaCustomer,
		Layanan:         req.Layanan,
		WorkerID:        req.WorkerID,
		TotalDp:         req.TotalDp,
		TotalPembayaran: req.TotalPembayaran,
		Kekurangan:      kekurangan,
		FeeFreelance:    feeFreelance,
		Status:          req.Status,
		Tanggal:         tanggal,
	}
	if item.Status == "" {
		item.Status = "proses"
	}
	if err := h.Repository.CreateMitraOrder(&item); err != nil {
		logHandlerError("CreateMitraOrder", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create order")
		return
	}

	created, err := h.Repository.GetMitraOrderByID(item.ID)
	if err != nil {
		logHandlerError("CreateMitraOrder", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load created order")
		return
	}
	h.successResponse(c, http.StatusCreated, "order created", mitraOrderToResponse(*created))
}

// UpdateMitraOrder updates a freelance order, recomputing the derived
// amounts from the final payment values
// @Summary Update mitra order
// @Tags MitraOrders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body dto.UpdateMitraOrderRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [put]
func (h *APIHandler) UpdateMitraOrder(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateMitraOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetMitraOrderByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "order not found")
		return
	}

	if req.NamaCustomer != "" {
		item.NamaCustomer = req.NamaCustomer
	}
	if req.Layanan != nil {
		item.Layanan = *req.Layanan
	}
	if req.WorkerID != nil {
		if _, err := h.Repository.GetWorkerByID(*req.WorkerID); err != nil {
			h.errorResponse(c, http.StatusBadRequest, "worker not found")
			return
		}
		item.WorkerID = req.WorkerID
	}
	if req.TotalDp != nil {
		item.TotalDp = *req.TotalDp
	}
	if req.TotalPembayaran != nil {
		item.TotalPembayaran = *req.TotalPembayaran
	}
	if req.Status != "" {
		item.Status = req.Status
	}
	if req.Tanggal != "" {
		tanggal, err := parseTanggal(req.Tanggal)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		item.Tanggal = tanggal
	}

	item.Kekurangan, item.FeeFreelance = finance.HitungOrder(item.TotalDp, item.TotalPembayaran)

	if err := h.Repository.UpdateMitraOrder(item); err != nil {
		logHandlerError("UpdateMitraOrder", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update order")
		return
	}

	updated, err := h.Repository.GetMitraOrderByID(item.ID)
	if err != nil {
		logHandlerError("UpdateMitraOrder", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load updated order")
		return
	}
	h.successResponse(c, http.StatusOK, "order updated", mitraOrderToResponse(*updated))
}

// DeleteMitraOrder removes a freelance order
// @Summary Delete mitra order
// @Tags MitraOrders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [delete]
func (h *APIHandler) DeleteMitraOrder(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetMitraOrderByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "order not found")
		return
	}

	if err := h.Repository.DeleteMitraOrder(id); err != nil {
		logHandlerError("DeleteMitraOrder", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete order")
		return
	}
	h.successResponse(c, http.StatusOK, "order deleted", nil)
}
