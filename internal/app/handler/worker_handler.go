package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agensi-backend/internal/app/ds"
	"agensi-backend/internal/app/dto"
)

func workerToResponse(w ds.Worker) dto.WorkerResponse {
	return dto.WorkerResponse{
		ID:        w.ID,
		Nama:      w.Nama,
		Telepon:   w.Telepon,
		Keahlian:  w.Keahlian,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// GetWorkers lists freelance workers
// @Summary List workers
// @Tags Workers
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search by name or skill"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/workers [get]
func (h *APIHandler) GetWorkers(c *gin.Context) {
	items, err := h.Repository.GetWorkers(c.Query("query"))
	if err != nil {
		logHandlerError("GetWorkers", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load workers")
		return
	}

	resp := dto.WorkerListResponse{Items: make([]dto.WorkerResponse, len(items)), Total: len(items)}
	for i, w := range items {
		resp.Items[i] = workerToResponse(w)
	}
	h.successResponse(c, http.StatusOK, "", resp)
}

// GetWorker returns one freelance worker
// @Summary Get worker
// @Tags Workers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/workers/{id} [get]
func (h *APIHandler) GetWorker(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetWorkerByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "worker not found")
		return
	}
	h.successResponse(c, http.StatusOK, "", workerToResponse(*item))
}

// CreateWorker registers a freelance worker
// @Summary Create worker
// @Tags Workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWorkerRequest true "Worker data"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/workers [post]
func (h *APIHandler) CreateWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item := ds.Worker{
		Nama:     req.Nama,
		Telepon:  req.Telepon,
		Keahlian: req.Keahlian,
		Status:   req.Status,
	}
	if item.Status == "" {
		item.Status = "aktif"
	}
	if err := h.Repository.CreateWorker(&item); err != nil {
		logHandlerError("CreateWorker", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create worker")
		return
	}
	h.successResponse(c, http.StatusCreated, "worker created", workerToResponse(item))
}

// UpdateWorker updates a freelance worker
// @Summary Update worker
// @Tags Workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker ID"
// @Param request body dto.UpdateWorkerRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/workers/{id} [put]
func (h *APIHandler) UpdateWorker(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetWorkerByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "worker not found")
		return
	}

	if req.Nama != "" {
		item.Nama = req.Nama
	}
	if req.Telepon != nil {
		item.Telepon = *req.Telepon
	}
	if req.Keahlian != nil {
		item.Keahlian = *req.Keahlian
	}
	if req.Status != "" {
		item.Status = req.Status
	}

	if err := h.Repository.UpdateWorker(item); err != nil {
		logHandlerError("UpdateWorker", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update worker")
		return
	}
	h.successResponse(c, http.StatusOK, "worker updated", workerToResponse(*item))
}

// DeleteWorker removes a freelance worker
// @Summary Delete worker
// @Tags Workers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/workers/{id} [delete]
func (h *APIHandler) DeleteWorker(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetWorkerByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "worker not found")
		return
	}

	if err := h.Repository.DeleteWorker(id); err != nil {
		logHandlerError("DeleteWorker", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete worker")
		return
	}
	h.successResponse(c, http.StatusOK, "worker deleted", nil)
}
