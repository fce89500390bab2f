package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the product catalog routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.GET("/code/:code", h.GetByCode)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.POST("/:id/configurations", h.AddConfiguration)
		products.PUT("/:id/configurations/:configurationId/price", h.UpdateConfigurationPrice)
		products.POST("/:id/image", h.UploadImage)
		products.POST("/:id/activate", h.Activate)
		products.DELETE("/:id", h.Deactivate)
	}
	serials := rg.Group("/serials")
	{
		serials.GET("", h.ListSerials)
		serials.GET("/:serialNumber", h.GetSerial)
	}
}

// RegisterRoutes mounts the promotion routes
func (h *PromotionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	promotions := rg.Group("/promotions")
	{
		promotions.GET("", h.List)
		promotions.POST("", h.Create)
		promotions.GET("/:id", h.Get)
		promotions.PUT("/:id", h.Update)
		promotions.DELETE("/:id", h.Deactivate)
	}
	rg.GET("/products/:id/promotions", h.ListCurrentForProduct)
}

// RegisterRoutes mounts the customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.POST("", h.Create)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.POST("/:id/activate", h.Activate)
		customers.DELETE("/:id", h.Deactivate)
	}
}

// RegisterRoutes mounts the supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.List)
		suppliers.POST("", h.Create)
		suppliers.GET("/:id", h.Get)
		suppliers.PUT("/:id", h.Update)
		suppliers.POST("/:id/activate", h.Activate)
		suppliers.DELETE("/:id", h.Deactivate)
	}
}

// RegisterRoutes mounts the employee routes
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	{
		employees.GET("", h.List)
		employees.POST("", h.Create)
		employees.GET("/:id", h.Get)
		employees.PUT("/:id", h.Update)
		employees.PUT("/:id/password", h.ChangePassword)
		employees.POST("/:id/avatar", h.UploadAvatar)
		employees.POST("/:id/activate", h.Activate)
		employees.DELETE("/:id", h.Deactivate)
	}
}

// RegisterRoutes mounts the sale invoice routes
func (h *SaleInvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.POST("", h.Create)
		invoices.GET("/:id", h.Get)
		invoices.PUT("/:id/status", h.UpdateStatus)
		invoices.POST("/:id/ship", h.Ship)
		invoices.POST("/:id/deliver", h.Deliver)
		invoices.POST("/:id/cancel", h.Cancel)
	}
}

// RegisterRoutes mounts the stock import routes
func (h *StockImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/stock/imports")
	{
		imports.GET("", h.List)
		imports.POST("", h.Create)
		imports.GET("/:id", h.Get)
		imports.PUT("/:id", h.Update)
		imports.DELETE("/:id", h.Delete)
	}
}

// RegisterRoutes mounts the stock export routes
func (h *StockExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	exports := rg.Group("/stock/exports")
	{
		exports.GET("", h.List)
		exports.POST("", h.Create)
		exports.GET("/:id", h.Get)
		exports.PUT("/:id", h.Update)
		exports.PUT("/:id/status", h.Transition)
		exports.DELETE("/:id", h.Delete)
	}
	rg.GET("/invoices/:id/export", h.GetByInvoice)
}

// RegisterRoutes mounts the warranty and repair ticket routes
func (h *WarrantyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tickets := rg.Group("/tickets")
	{
		tickets.GET("", h.List)
		tickets.POST("/warranty", h.CreateWarranty)
		tickets.POST("/repair", h.CreateRepair)
		tickets.GET("/:id", h.Get)
		tickets.PUT("/:id/status", h.Transition)
		tickets.PUT("/:id/fee", h.UpdateFee)
	}
}

// RegisterRoutes mounts the report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales/summary", h.SalesSummary)
		reports.GET("/sales/revenue-by-day", h.RevenueByDay)
		reports.GET("/sales/product-ranking", h.ProductRanking)
		reports.GET("/sales/export", h.DownloadSalesExcel)
		reports.GET("/stock", h.Stock)
		reports.GET("/stock/export", h.DownloadStockPDF)
	}
}

// RegisterRoutes mounts the health endpoints
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/live", h.Live)
}
