package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agensi-backend/internal/app/middleware"
	"agensi-backend/internal/app/role"
)

// CORSConfig is shared by the whole service. The admin UI is served from a
// different origin, so every response must allow it; the header allowlist
// is part of the manage-users contract.
func CORSConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	return cfg
}

// RegisterAPIRoutes registers all routes with their role requirements.
// Reads are open to admin and franchise accounts; mutations are admin-only.
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	readRoles := authMiddleware.WithAuthCheck(role.Admin, role.Franchise)
	adminOnly := authMiddleware.WithAuthCheck(role.Admin)

	api := router.Group("/api")

	// ============ Transactions ============
	transactions := api.Group("/transactions")
	{
		transactions.GET("", readRoles, h.GetTransactions)
		transactions.GET("/:id", readRoles, h.GetTransaction)
		transactions.GET("/:id/receipt", readRoles, h.GetTransactionReceipt)

		transactions.POST("", adminOnly, h.CreateTransaction)
		transactions.PUT("/:id", adminOnly, h.UpdateTransaction)
		transactions.DELETE("/:id", adminOnly, h.DeleteTransaction)
		transactions.POST("/:id/receipt", adminOnly, h.UploadTransactionReceipt)
	}

	// ============ Franchises ============
	franchises := api.Group("/franchises")
	{
		franchises.GET("", readRoles, h.GetFranchises)
		franchises.GET("/:id", readRoles, h.GetFranchise)

		franchises.POST("", adminOnly, h.CreateFranchise)
		franchises.PUT("/:id", adminOnly, h.UpdateFranchise)
		franchises.DELETE("/:id", adminOnly, h.DeleteFranchise)
	}

	// ============ Franchise finances ============
	finances := api.Group("/franchise-finances")
	{
		finances.GET("", readRoles, h.GetFranchiseFinances)
		finances.GET("/:id", readRoles, h.GetFranchiseFinance)

		finances.POST("", adminOnly, h.CreateFranchiseFinance)
		finances.PUT("/:id", adminOnly, h.UpdateFranchiseFinance)
		finances.DELETE("/:id", adminOnly, h.DeleteFranchiseFinance)
	}

	// ============ Mitra orders ============
	orders := api.Group("/orders")
	{
		orders.GET("", readRoles, h.GetMitraOrders)
		orders.GET("/:id", readRoles, h.GetMitraOrder)

		orders.POST("", adminOnly, h.CreateMitraOrder)
		orders.PUT("/:id", adminOnly, h.UpdateMitraOrder)
		orders.DELETE("/:id", adminOnly, h.DeleteMitraOrder)
	}

	// ============ Workers ============
	workers := api.Group("/workers")
	{
		workers.GET("", readRoles, h.GetWorkers)
		workers.GET("/:id", readRoles, h.GetWorker)

		workers.POST("", adminOnly, h.CreateWorker)
		workers.PUT("/:id", adminOnly, h.UpdateWorker)
		workers.DELETE("/:id", adminOnly, h.DeleteWorker)
	}

	// ============ Reports ============
	api.GET("/reports/monthly", readRoles, h.GetMonthlyReport)

	// ============ Account management gateway ============
	// Authenticates and authorizes on its own; it must answer 401/403 in
	// its own wire format, so it sits outside the auth middleware.
	h.ManageUsers.Register(router)

	router.GET("/ping", h.Ping)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Register mounts the gateway routes.
func (mh *ManageUsersHandler) Register(router *gin.Engine) {
	router.POST("/manage-users", mh.Handle)
	router.OPTIONS("/manage-users", mh.Preflight)
}

// Ping checks service health.
// @Summary Health check
// @Description Returns a simple response to verify the server is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
