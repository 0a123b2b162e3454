package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"agensi-backend/internal/app/ds"
	"agensi-backend/internal/app/dto"
)

const maxReceiptSize = 5 * 1024 * 1024 // 5MB

func transactionToResponse(t ds.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         t.ID,
		Jenis:      t.Jenis,
		Kategori:   t.Kategori,
		Jumlah:     t.Jumlah,
		Tanggal:    t.Tanggal,
		Keterangan: t.Keterangan,
		HasReceipt: t.ReceiptObject != nil,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// GetTransactions lists ledger entries
// @Summary List transactions
// @Description Returns all transactions, optionally filtered by a search query over category and notes
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search by category or notes"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions [get]
func (h *APIHandler) GetTransactions(c *gin.Context) {
	items, err := h.Repository.GetTransactions(c.Query("query"))
	if err != nil {
		logHandlerError("GetTransactions", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	resp := dto.TransactionListResponse{Items: make([]dto.TransactionResponse, len(items)), Total: len(items)}
	for i, t := range items {
		resp.Items[i] = transactionToResponse(t)
	}
	h.successResponse(c, http.StatusOK, "", resp)
}

// GetTransaction returns one ledger entry
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [get]
func (h *APIHandler) GetTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetTransactionByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "transaction not found")
		return
	}
	h.successResponse(c, http.StatusOK, "", transactionToResponse(*item))
}

// CreateTransaction records a ledger entry
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/transactions [post]
func (h *APIHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	tanggal, err := parseTanggal(req.Tanggal)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item := ds.Transaction{
		Jenis:      req.Jenis,
		Kategori:   req.Kategori,
		Jumlah:     req.Jumlah,
		Tanggal:    tanggal,
		Keterangan: req.Keterangan,
	}
	if err := h.Repository.CreateTransaction(&item); err != nil {
		logHandlerError("CreateTransaction", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create transaction")
		return
	}
	h.successResponse(c, http.StatusCreated, "transaction created", transactionToResponse(item))
}

// UpdateTransaction updates a ledger entry
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [put]
func (h *APIHandler) UpdateTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetTransactionByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "transaction not found")
		return
	}

	if req.Jenis != "" {
		item.Jenis = req.Jenis
	}
	if req.Kategori != "" {
		item.Kategori = req.Kategori
	}
	if req.Jumlah != nil {
		item.Jumlah = *req.Jumlah
	}
	if req.Tanggal != "" {
		tanggal, err := parseTanggal(req.Tanggal)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		item.Tanggal = tanggal
	}
	if req.Keterangan != nil {
		item.Keterangan = *req.Keterangan
	}

	if err := h.Repository.UpdateTransaction(item); err != nil {
		logHandlerError("UpdateTransaction", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update transaction")
		return
	}
	h.successResponse(c, http.StatusOK, "transaction updated", transactionToResponse(*item))
}

// DeleteTransaction removes a ledger entry and its receipt object
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [delete]
func (h *APIHandler) DeleteTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetTransactionByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "transaction not found")
		return
	}

	if err := h.Repository.DeleteTransaction(id); err != nil {
		logHandlerError("DeleteTransaction", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	// receipt cleanup is best-effort; the row is already gone
	if item.ReceiptObject != nil && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteReceipt(*item.ReceiptObject); err != nil {
			logrus.WithError(err).Warn("failed to delete receipt object")
		}
	}
	h.successResponse(c, http.StatusOK, "transaction deleted", nil)
}

// UploadTransactionReceipt attaches a receipt image to a transaction
// @Summary Upload transaction receipt
// @Tags Transactions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param file formData file true "Receipt image (max 5MB)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/transactions/{id}/receipt [post]
func (h *APIHandler) UploadTransactionReceipt(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "receipt storage unavailable")
		return
	}

	item, err := h.Repository.GetTransactionByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "transaction not found")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	if fileHeader.Size > maxReceiptSize {
		h.errorResponse(c, http.StatusBadRequest, "file too large (max 5MB)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "failed to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "failed to read file")
		return
	}

	objectName, err := h.MinIOClient.UploadReceipt(data, fileHeader.Filename)
	if err != nil {
		logHandlerError("UploadTransactionReceipt", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to store receipt")
		return
	}

	// replacing an existing receipt removes the old object
	if item.ReceiptObject != nil {
		if err := h.MinIOClient.DeleteReceipt(*item.ReceiptObject); err != nil {
			logrus.WithError(err).Warn("failed to delete replaced receipt object")
		}
	}

	if err := h.Repository.SetTransactionReceipt(id, objectName); err != nil {
		logHandlerError("UploadTransactionReceipt", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to save receipt reference")
		return
	}
	h.successResponse(c, http.StatusOK, "receipt uploaded", nil)
}

// GetTransactionReceipt returns a temporary URL for the receipt image
// @Summary Get transaction receipt URL
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/transactions/{id}/receipt [get]
func (h *APIHandler) GetTransactionReceipt(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Repository.GetTransactionByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "transaction not found")
		return
	}
	if item.ReceiptObject == nil {
		h.errorResponse(c, http.StatusNotFound, "transaction has no receipt")
		return
	}
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "receipt storage unavailable")
		return
	}

	url, err := h.MinIOClient.ReceiptURL(*item.ReceiptObject)
	if err != nil {
		logHandlerError("GetTransactionReceipt", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to generate receipt URL")
		return
	}
	h.successResponse(c, http.StatusOK, "", dto.ReceiptURLResponse{URL: url})
}
