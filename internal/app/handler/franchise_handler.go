package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agensi-backend/internal/app/ds"
	"agensi-backend/internal/app/dto"
)

func franchiseToResponse(f ds.Franchise) dto.FranchiseResponse {
	return dto.FranchiseResponse{
		ID:        f.ID,
		Nama:      f.Nama,
		Pemilik:   f.Pemilik,
		Telepon:   f.Telepon,
		Alamat:    f.Alamat,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// GetFranchises lists franchise partners
// @Summary List franchises
// @Tags Franchises
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search by name or owner"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/franchises [get]
func (h *APIHandler) GetFranchises(c *gin.Context) {
	items, err := h.Repository.GetFranchises(c.Query("query"))
	if err != nil {
		logHandlerError("GetFranchises", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load franchises")
		return
	}

	resp := dto.FranchiseListResponse{Items: make([]dto.FranchiseResponse, len(items)), Total: len(items)}
	for i, f := range items {
		resp.Items[i] = franchiseToResponse(f)
	}
	h.successResponse(c, http.StatusOK, "", resp)
}

// GetFranchise returns one franchise partner
// @Summary Get franchise
// @Tags Franchises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Franchise ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/franchises/{id} [get]
func (h *APIHandler) GetFranchise(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetFranchiseByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "franchise not found")
		return
	}
	h.successResponse(c, http.StatusOK, "", franchiseToResponse(*item))
}

// CreateFranchise registers a franchise partner
// @Summary Create franchise
// @Tags Franchises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFranchiseRequest true "Franchise data"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/franchises [post]
func (h *APIHandler) CreateFranchise(c *gin.Context) {
	var req dto.CreateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item := ds.Franchise{
		Nama:    req.Nama,
		Pemilik: req.Pemilik,
		Telepon: req.Telepon,
		Alamat:  req.Alamat,
		Status:  req.Status,
	}
	if item.Status == "" {
		item.Status = "aktif"
	}
	if err := h.Repository.CreateFranchise(&item); err != nil {
		logHandlerError("CreateFranchise", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create franchise")
		return
	}
	h.successResponse(c, http.StatusCreated, "franchise created", franchiseToResponse(item))
}

// UpdateFranchise updates a franchise partner
// @Summary Update franchise
// @Tags Franchises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Franchise ID"
// @Param request body dto.UpdateFranchiseRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/franchises/{id} [put]
func (h *APIHandler) UpdateFranchise(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetFranchiseByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "franchise not found")
		return
	}

	if req.Nama != "" {
		item.Nama = req.Nama
	}
	if req.Pemilik != nil {
		item.Pemilik = *req.Pemilik
	}
	if req.Telepon != nil {
		item.Telepon = *req.Telepon
	}
	if req.Alamat != nil {
		item.Alamat = *req.Alamat
	}
	if req.Status != "" {
		item.Status = req.Status
	}

	if err := h.Repository.UpdateFranchise(item); err != nil {
		logHandlerError("UpdateFranchise", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update franchise")
		return
	}
	h.successResponse(c, http.StatusOK, "franchise updated", franchiseToResponse(*item))
}

// DeleteFranchise removes a franchise partner
// @Summary Delete franchise
// @Tags Franchises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Franchise ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/franchises/{id} [delete]
func (h *APIHandler) DeleteFranchise(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetFranchiseByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "franchise not found")
		return
	}

	if err := h.Repository.DeleteFranchise(id); err != nil {
		logHandlerError("DeleteFranchise", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete franchise")
		return
	}
	h.successResponse(c, http.StatusOK, "franchise deleted", nil)
}
